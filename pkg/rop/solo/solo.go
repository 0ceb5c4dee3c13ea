package solo

import (
	"context"

	"github.com/ib-77/asyncrop/pkg/rop"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Failure[T](err)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, failure E)) rop.Result[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input rop.Result[T, E],
	validate func(ctx context.Context, in T) (valid bool, failure E)) rop.Result[T, E] {

	return rop.FlatMap(input, func(in T) rop.Result[T, E] {
		if isValid, failure := validate(ctx, in); !isValid {
			return rop.Failure[T](failure)
		}
		return rop.Success[T, E](in)
	})
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	return rop.FlatMap(input, func(in In) rop.Result[Out, E] {
		return onSuccess(ctx, in)
	})
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	return rop.Map(input, func(in In) Out {
		return onSuccess(ctx, in)
	})
}

func MapFailure[T, E, F any](ctx context.Context,
	input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) F) rop.Result[T, F] {

	return rop.MapFailure(input, func(err E) F {
		return onFailure(ctx, err)
	})
}

// Recover turns a failure back into a result via onFailure.
func Recover[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) rop.Result[T, E]) rop.Result[T, E] {

	return rop.Fold(input,
		func(T) rop.Result[T, E] { return input },
		func(err E) rop.Result[T, E] { return onFailure(ctx, err) })
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T)) rop.Result[T, E] {

	input.Match(func(r T) { onSuccess(ctx, r) }, func(E) {})
	return input
}

func TeeIf[T, E any](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T, E] {

	input.Match(func(r T) {
		if condition(ctx, r) {
			onSuccessAndCondition(ctx, r)
		}
	}, func(E) {})
	return input
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) rop.Result[T, E] {

	input.Match(
		func(r T) { onSuccess(ctx, r) },
		func(err E) { onFailure(ctx, err) })
	return input
}

// DoubleMap maps the success value and calls onFailure for its side effect;
// a failure keeps its error.
func DoubleMap[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E)) rop.Result[Out, E] {

	return rop.Fold(input,
		func(r In) rop.Result[Out, E] {
			return rop.Success[Out, E](onSuccess(ctx, r))
		},
		func(err E) rop.Result[Out, E] {
			onFailure(ctx, err)
			return rop.Failure[Out](err)
		})
}

func Try[In, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, error] {

	return rop.FlatMap(input, func(r In) rop.Result[Out, error] {
		return rop.Of(onTryExecute(ctx, r))
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T, error] {

	return rop.FlatMap(input, func(in T) rop.Result[T, error] {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Failure[T](err)
		}
		return input
	})
}

func Finally[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	return rop.Fold(input,
		func(r In) Out { return onSuccess(ctx, r) },
		func(err E) Out { return onFailure(ctx, err) })
}
