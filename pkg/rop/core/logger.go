package core

// Logger is the logging surface used by pools and chains. It is out of the
// box compatible with log.Log and *log.Logger from github.com/apex/log.
type Logger interface {
	Debug(msg string)
	Debugf(format string, v ...interface{})
	Info(msg string)
	Infof(format string, v ...interface{})
	Warn(msg string)
	Warnf(format string, v ...interface{})
}

// DiscardLogger drops everything.
var DiscardLogger Logger = discard{}

type discard struct{}

func (discard) Debug(string)                  {}
func (discard) Debugf(string, ...interface{}) {}
func (discard) Info(string)                   {}
func (discard) Infof(string, ...interface{})  {}
func (discard) Warn(string)                   {}
func (discard) Warnf(string, ...interface{})  {}
