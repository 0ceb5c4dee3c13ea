package rop

import (
	"fmt"

	"github.com/ib-77/asyncrop/pkg/future"
)

// Result is either a Success holding a T or a Failure holding an E. It is
// immutable; every transformation returns a new Result. The zero value is a
// Failure carrying the zero E.
type Result[T, E any] struct {
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		isSuccess: true,
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
	}
}

// Of converts Go's (value, error) pair into a Result.
func Of[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](value)
}

// failureFrom rebinds the success type of a Failure, keeping its error.
// Callers only pass failures.
func failureFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{err: from.err}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Match calls exactly one of onSuccess or onFailure.
func (r Result[T, E]) Match(onSuccess func(T), onFailure func(E)) {
	if r.isSuccess {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

// Fold applies onSuccess or onFailure, whichever matches r, and returns its
// result. Exactly one of them is called.
func Fold[T, E, R any](r Result[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// FlatMapAsync hands the success value to mapper and returns the future it
// yields as is. On a Failure mapper is not called; the result is an already
// resolved future of the same failure, so nothing is scheduled.
func FlatMapAsync[T, U, E any](r Result[T, E],
	mapper func(T) *future.Future[Result[U, E]]) *future.Future[Result[U, E]] {
	if r.isSuccess {
		return mapper(r.value)
	}
	return future.Resolved(failureFrom[U](r))
}

func FlatMap[T, U, E any](r Result[T, E], mapper func(T) Result[U, E]) Result[U, E] {
	if r.isSuccess {
		return mapper(r.value)
	}
	return failureFrom[U](r)
}

func Map[T, U, E any](r Result[T, E], mapper func(T) U) Result[U, E] {
	if r.isSuccess {
		return Success[U, E](mapper(r.value))
	}
	return failureFrom[U](r)
}

func MapFailure[T, E, F any](r Result[T, E], mapper func(E) F) Result[T, F] {
	if r.isSuccess {
		return Success[T, F](r.value)
	}
	return Failure[T](mapper(r.err))
}
