package future

import (
	"sync/atomic"

	"github.com/ib-77/asyncrop/pkg/rop/core"
)

type loggerHolder struct {
	core.Logger
}

var logger atomic.Value

// SetLogger sets the logger reporting panics of OnResolve observers.
// A nil logger restores core.DiscardLogger.
func SetLogger(l core.Logger) {
	if l == nil {
		l = core.DiscardLogger
	}
	logger.Store(loggerHolder{Logger: l})
}

func getLogger() core.Logger {
	if h, ok := logger.Load().(loggerHolder); ok {
		return h.Logger
	}
	return core.DiscardLogger
}
