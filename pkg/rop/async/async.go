package async

import (
	"context"

	"github.com/google/uuid"
	"github.com/ib-77/asyncrop/pkg/future"
	"github.com/ib-77/asyncrop/pkg/rop"
	"github.com/ib-77/asyncrop/pkg/rop/core"
)

// AsyncResult wraps a pending rop.Result and chains further asynchronous
// steps onto it. Chaining never mutates the receiver; every step returns a
// new AsyncResult sharing the chain id and logger.
type AsyncResult[T, E any] struct {
	pending *future.Future[rop.Result[T, E]]
	chainID uuid.UUID
	logger  core.Logger
}

// Of wraps an existing pending result.
func Of[T, E any](pending *future.Future[rop.Result[T, E]]) AsyncResult[T, E] {
	return AsyncResult[T, E]{
		pending: pending,
		chainID: uuid.New(),
		logger:  core.DiscardLogger,
	}
}

func Succeed[T, E any](value T) AsyncResult[T, E] {
	return Of(future.Resolved(rop.Success[T, E](value)))
}

func Fail[T, E any](err E) AsyncResult[T, E] {
	return Of(future.Resolved(rop.Failure[T](err)))
}

// Go starts fn on exec.
func Go[T, E any](exec future.Executor, fn func() rop.Result[T, E]) AsyncResult[T, E] {
	return Of(future.Go(exec, fn))
}

// ThenCompose waits for a to resolve and, on success, continues with the
// pending result mapper returns. On failure mapper is never called and the
// chain resolves to the same error.
func ThenCompose[T, U, E any](a AsyncResult[T, E],
	mapper func(T) *future.Future[rop.Result[U, E]]) AsyncResult[U, E] {

	return derive(a, future.Then(a.pending, func(r rop.Result[T, E]) *future.Future[rop.Result[U, E]] {
		logSkipped(a.logger, a.chainID, r)
		return rop.FlatMapAsync(r, mapper)
	}))
}

// ThenComposeOn is ThenCompose with mapper scheduled on exec. A failed
// upstream does not touch exec.
func ThenComposeOn[T, U, E any](a AsyncResult[T, E], exec future.Executor,
	mapper func(T) *future.Future[rop.Result[U, E]]) AsyncResult[U, E] {

	return ThenCompose(a, func(v T) *future.Future[rop.Result[U, E]] {
		return future.ThenOn(future.Resolved(v), exec, mapper)
	})
}

// ThenSwitch continues with a synchronous step returning a rop.Result.
func ThenSwitch[T, U, E any](a AsyncResult[T, E], mapper func(T) rop.Result[U, E]) AsyncResult[U, E] {
	return ThenCompose(a, func(v T) *future.Future[rop.Result[U, E]] {
		return future.Resolved(mapper(v))
	})
}

// ThenMap transforms the success value.
func ThenMap[T, U, E any](a AsyncResult[T, E], mapper func(T) U) AsyncResult[U, E] {
	return ThenSwitch(a, func(v T) rop.Result[U, E] {
		return rop.Success[U, E](mapper(v))
	})
}

// Fold resolves to whichever of onSuccess or onFailure matches the final
// result.
func Fold[T, E, R any](a AsyncResult[T, E], onSuccess func(T) R, onFailure func(E) R) *future.Future[R] {
	return future.Map(a.pending, func(r rop.Result[T, E]) R {
		return rop.Fold(r, onSuccess, onFailure)
	})
}

// Then is the fluent form of ThenCompose for steps keeping the value type.
func (a AsyncResult[T, E]) Then(mapper func(T) *future.Future[rop.Result[T, E]]) AsyncResult[T, E] {
	return ThenCompose(a, mapper)
}

// ToPending exposes the wrapped pending result.
func (a AsyncResult[T, E]) ToPending() *future.Future[rop.Result[T, E]] {
	return a.pending
}

// Await blocks until the chain resolves. The error is never a domain
// failure: it reports ctx cancellation or a panic inside a step.
func (a AsyncResult[T, E]) Await(ctx context.Context) (rop.Result[T, E], error) {
	r, err := a.pending.Await(ctx)
	if err != nil {
		a.logger.Warnf("chain %s: %v", a.chainID, err)
		return r, err
	}
	logResolved(a.logger, a.chainID, r)
	return r, nil
}

func (a AsyncResult[T, E]) WithLogger(logger core.Logger) AsyncResult[T, E] {
	if logger == nil {
		logger = core.DiscardLogger
	}
	a.logger = logger
	return a
}

func (a AsyncResult[T, E]) ID() uuid.UUID {
	return a.chainID
}

func derive[T, U, E any](from AsyncResult[T, E], pending *future.Future[rop.Result[U, E]]) AsyncResult[U, E] {
	return AsyncResult[U, E]{
		pending: pending,
		chainID: from.chainID,
		logger:  from.logger,
	}
}

func logSkipped(logger core.Logger, chainID uuid.UUID, upstream rop.Outcome) {
	if upstream.IsFailure() {
		logger.Debugf("chain %s: step skipped, upstream %s", chainID, upstream)
	}
}

func logResolved(logger core.Logger, chainID uuid.UUID, outcome rop.Outcome) {
	if outcome.IsFailure() {
		logger.Infof("chain %s: resolved to %s", chainID, outcome)
		return
	}
	logger.Debugf("chain %s: resolved to %s", chainID, outcome)
}
