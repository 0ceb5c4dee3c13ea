package chain

import (
	"context"

	"github.com/ib-77/asyncrop/pkg/future"
	"github.com/ib-77/asyncrop/pkg/rop"
	"github.com/ib-77/asyncrop/pkg/rop/async"
	"github.com/ib-77/asyncrop/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, rop.Success[T, E](value))
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Validate fails the chain when validate rejects the current value
func (c *Chain[T, E]) Validate(validate func(context.Context, T) (bool, E)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.AndValidate(c.ctx, c.result, validate),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
	}
}

// Recover replaces a failure with the result of onFailure
func (c *Chain[T, E]) Recover(onFailure func(context.Context, E) rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Recover(c.ctx, c.result, onFailure),
	}
}

// Async lifts the current result into an already resolved AsyncResult
func (c *Chain[T, E]) Async() async.AsyncResult[T, E] {
	return async.Of(future.Resolved(c.result))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
