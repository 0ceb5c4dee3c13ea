package chain

import (
	"context"
	"strconv"
	"testing"

	"github.com/ib-77/asyncrop/pkg/future"
	"github.com/ib-77/asyncrop/pkg/rop"
	"github.com/ib-77/asyncrop/pkg/rop/async"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonNegative(_ context.Context, v int) (bool, string) {
	if v < 0 {
		return false, "negative"
	}
	return true, ""
}

func TestStart_Result(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, rop.Success[int, string](10), Start(ctx, rop.Success[int, string](10)).Result())
	assert.Equal(t, rop.Success[int, string](7), FromValue[int, string](ctx, 7).Result())
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Then(Start(ctx, rop.Failure[int]("boom")), func(context.Context, int) rop.Result[string, string] {
		called = true
		return rop.Success[string, string]("ok")
	}).Result()

	assert.Equal(t, rop.Failure[string]("boom"), out)
	assert.False(t, called)
}

func TestThen_Map_Validate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Map(FromValue[int, string](ctx, 4).Validate(nonNegative),
		func(_ context.Context, v int) string { return strconv.Itoa(v * 2) })
	assert.Equal(t, rop.Success[string, string]("8"), c.Result())

	c = Map(FromValue[int, string](ctx, -4).Validate(nonNegative),
		func(_ context.Context, v int) string { return strconv.Itoa(v * 2) })
	assert.Equal(t, rop.Failure[string]("negative"), c.Result())
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	atoi := func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }

	assert.Equal(t, rop.Success[int, error](12), ThenTry(FromValue[string, error](ctx, "12"), atoi).Result())
	assert.True(t, ThenTry(FromValue[string, error](ctx, "twelve"), atoi).Result().IsFailure())
}

func TestEnsure_SideEffectOnlyOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := 0
	FromValue[int, string](ctx, 2).Ensure(func(context.Context, int) { called++ })
	Start(ctx, rop.Failure[int]("x")).Ensure(func(context.Context, int) { called++ })

	assert.Equal(t, 1, called)
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := Start(ctx, rop.Failure[int]("missing")).
		Recover(func(_ context.Context, e string) rop.Result[int, string] {
			return rop.Success[int, string](len(e))
		})
	assert.Equal(t, rop.Success[int, string](7), c.Result())
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	onSuccess := func(_ context.Context, v int) string { return "v" + strconv.Itoa(v) }
	onFailure := func(_ context.Context, err error) string { return err.Error() }

	assert.Equal(t, "v3", Finally(FromValue[int, error](ctx, 3), onSuccess, onFailure))
	assert.Equal(t, "boom", Finally(Start(ctx, rop.Failure[int, error](boom)), onSuccess, onFailure))
}

func TestAsync_ContinuesChain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := async.ThenCompose(FromValue[int, string](ctx, 20).Async(),
		func(v int) *future.Future[rop.Result[int, string]] {
			return future.Go(future.Goroutine, func() rop.Result[int, string] {
				return rop.Success[int, string](v + 1)
			})
		})

	r, err := res.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, rop.Success[int, string](21), r)
}
