package future

import (
	"context"
	"sync"

	"github.com/eapache/queue"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Future is a handle to a value that becomes available later. It is
// resolved exactly once and is safe for concurrent use by any number of
// observers.
type Future[T any] struct {
	id        uuid.UUID
	mu        sync.Mutex
	done      chan struct{}
	resolved  bool
	value     T
	err       error
	callbacks *queue.Queue
	// depth counts how many resolutions are nested on the stack that
	// resolved this future.
	depth int
}

// maxInlineDepth bounds nested synchronous resolution; deeper chains continue
// on a fresh goroutine.
const maxInlineDepth = 1 << 8

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		done:      make(chan struct{}),
		callbacks: queue.New(),
	}
}

// Resolved returns a future already resolved with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.complete(v, nil)
	return f
}

// Failed returns a future already resolved with err.
func Failed[T any](err error) *Future[T] {
	if err == nil {
		err = ErrNilError
	}
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}

// Go runs fn on exec and returns a future of its result.
func Go[T any](exec Executor, fn func() T) *Future[T] {
	f := newFuture[T]()
	exec.Execute(func() {
		f.complete(safeCall(fn))
	})
	return f
}

// complete resolves f and runs the queued continuations in registration
// order. It reports false if f was already resolved.
func (f *Future[T]) complete(v T, err error) bool {
	return f.completeAt(v, err, 0)
}

func (f *Future[T]) completeAt(v T, err error, depth int) bool {
	f.mu.Lock()
	if f.resolved {
		f.mu.Unlock()
		return false
	}
	f.value, f.err, f.resolved, f.depth = v, err, true, depth
	pending := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for pending.Length() > 0 {
		f.runCallback(pending.Remove().(func()))
	}
	return true
}

// runCallback keeps a panicking observer from stopping the continuations
// queued behind it.
func (f *Future[T]) runCallback(cb func()) {
	defer func() {
		if r := recover(); r != nil {
			getLogger().Warnf("future %s: observer panicked: %v", f.id, r)
		}
	}()
	cb()
}

func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

// Done returns a channel closed once f is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) IsResolved() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resolved
}

// Peek returns the value without blocking. ok is false while f is pending
// or when it resolved with an error.
func (f *Future[T]) Peek() (v T, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.resolved || f.err != nil {
		return v, false
	}
	return f.value, true
}

// Await blocks until f resolves or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, errors.Wrapf(ctx.Err(), "future %s: await", f.id)
	}
}

// OnResolve registers fn to run once f resolves. If f is already resolved
// fn runs immediately on the calling goroutine, otherwise on the goroutine
// that resolves f.
func (f *Future[T]) OnResolve(fn func(v T, err error)) {
	f.mu.Lock()
	if !f.resolved {
		f.callbacks.Add(func() { fn(f.value, f.err) })
		f.mu.Unlock()
		return
	}
	v, err := f.value, f.err
	f.mu.Unlock()
	fn(v, err)
}

// Then chains fn onto f. fn runs only if f resolves without error; the
// returned future follows the future fn returns.
func Then[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return ThenOn(f, Inline, fn)
}

// ThenOn is Then with fn scheduled on exec. exec is not used when f
// resolves with an error.
func ThenOn[T, U any](f *Future[T], exec Executor, fn func(T) *Future[U]) *Future[U] {
	next := newFuture[U]()
	f.OnResolve(func(v T, err error) {
		depth := f.depth + 1
		run := exec
		if depth >= maxInlineDepth {
			run, depth = Goroutine, 0
		}

		if err != nil {
			var zero U
			if depth == 0 {
				run.Execute(func() { next.completeAt(zero, err, 0) })
				return
			}
			next.completeAt(zero, err, depth)
			return
		}

		run.Execute(func() {
			inner, err := safeCall(func() *Future[U] { return fn(v) })
			if err != nil {
				var zero U
				next.completeAt(zero, err, depth)
				return
			}
			if inner == nil {
				var zero U
				next.completeAt(zero, ErrNilFuture, depth)
				return
			}
			inner.OnResolve(func(u U, err error) {
				next.completeAt(u, err, max(depth, inner.depth)+1)
			})
		})
	})
	return next
}

// Map chains a plain transformation onto f.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return Then(f, func(v T) *Future[U] {
		return Resolved(fn(v))
	})
}

// FromChan resolves with the first value received from ch. It fails with
// ErrChanClosed if ch is closed first, or with the context error if ctx is
// done first.
func FromChan[T any](ctx context.Context, ch <-chan T) *Future[T] {
	f := newFuture[T]()
	go func() {
		var zero T
		select {
		case v, ok := <-ch:
			if !ok {
				f.complete(zero, ErrChanClosed)
				return
			}
			f.complete(v, nil)
		case <-ctx.Done():
			f.complete(zero, errors.Wrap(ctx.Err(), "future: from chan"))
		}
	}()
	return f
}
