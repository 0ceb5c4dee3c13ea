package future

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrAlreadyResolved = errors.New("future: already resolved")
	ErrNilFuture       = errors.New("future: continuation returned a nil future")
	ErrNilError        = errors.New("future: rejected with a nil error")
	ErrChanClosed      = errors.New("future: channel closed before a value was received")
)

// PanicError is the failure of a future whose task or continuation panicked.
type PanicError struct {
	Value interface{}
	cause error
}

func newPanicError(v interface{}) *PanicError {
	return &PanicError{Value: v, cause: errors.Errorf("future: panic: %v", v)}
}

func (e *PanicError) Error() string {
	return e.cause.Error()
}

// StackTrace returns the stack recorded where the panic was recovered.
func (e *PanicError) StackTrace() errors.StackTrace {
	if st, ok := e.cause.(interface{ StackTrace() errors.StackTrace }); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *PanicError) Format(s fmt.State, verb rune) {
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func safeCall[T any](fn func() T) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(r)
		}
	}()
	return fn(), nil
}
