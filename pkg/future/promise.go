package future

// Promise is the producer side of a Future. Only the first Resolve or
// Reject takes effect.
type Promise[T any] struct {
	future *Future[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{future: newFuture[T]()}
}

func (p *Promise[T]) Future() *Future[T] {
	return p.future
}

func (p *Promise[T]) Resolve(v T) error {
	if !p.future.complete(v, nil) {
		return ErrAlreadyResolved
	}
	return nil
}

func (p *Promise[T]) Reject(err error) error {
	if err == nil {
		return ErrNilError
	}
	var zero T
	if !p.future.complete(zero, err) {
		return ErrAlreadyResolved
	}
	return nil
}
