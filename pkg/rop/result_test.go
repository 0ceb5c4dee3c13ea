package rop

import (
	"context"
	"strconv"
	"testing"

	"github.com/ib-77/asyncrop/pkg/future"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity[T any](v T) T { return v }

func await[T any](t *testing.T, f *future.Future[T]) T {
	t.Helper()
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	return v
}

func TestFold_Success(t *testing.T) {
	t.Parallel()

	calls := 0
	got := Fold(Success[int, string](7), identity[int], func(string) int {
		calls++
		return -1
	})

	assert.Equal(t, 7, got)
	assert.Equal(t, 0, calls)
}

func TestFold_Failure(t *testing.T) {
	t.Parallel()

	calls := 0
	got := Fold(Failure[int]("bad"), func(int) string {
		calls++
		return "unexpected"
	}, identity[string])

	assert.Equal(t, "bad", got)
	assert.Equal(t, 0, calls)
}

func TestMatch_CallsOneBranch(t *testing.T) {
	t.Parallel()

	var successes, failures int
	Success[int, error](1).Match(func(int) { successes++ }, func(error) { failures++ })
	Failure[int, error](errors.New("x")).Match(func(int) { successes++ }, func(error) { failures++ })

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, failures)
}

func TestResult_Variants(t *testing.T) {
	t.Parallel()

	s := Success[string, int]("ok")
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailure())
	assert.Equal(t, "Success(ok)", s.String())

	f := Failure[string](404)
	assert.False(t, f.IsSuccess())
	assert.True(t, f.IsFailure())
	assert.Equal(t, "Failure(404)", f.String())

	var zero Result[string, int]
	assert.True(t, zero.IsFailure())
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.True(t, Of(strconv.Atoi("12")).IsSuccess())

	r := Of(strconv.Atoi("x"))
	assert.True(t, r.IsFailure())
	var numErr *strconv.NumError
	assert.ErrorAs(t, Fold(r, func(int) error { return nil }, identity[error]), &numErr)
}

func TestFailureRelabel_KeepsErrorValue(t *testing.T) {
	t.Parallel()

	e := &struct{ code int }{code: 3}
	relabeled := failureFrom[string](Failure[int](e))

	assert.True(t, relabeled.IsFailure())
	got := Fold(relabeled, func(string) *struct{ code int } { return nil }, identity[*struct{ code int }])
	assert.Same(t, e, got)
}

func TestMap_FailureKeepsErrorValue(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	mapped := Map(Failure[int, error](boom), func(v int) string { return "never" })

	assert.Same(t, boom, Fold(mapped, func(string) error { return nil }, identity[error]))
}

func TestFlatMapAsync_SuccessReturnsMapperFuture(t *testing.T) {
	t.Parallel()

	p := future.NewPromise[Result[string, error]]()
	got := FlatMapAsync(Success[int, error](5), func(v int) *future.Future[Result[string, error]] {
		assert.Equal(t, 5, v)
		return p.Future()
	})

	assert.Same(t, p.Future(), got)

	require.NoError(t, p.Resolve(Success[string, error]("five")))
	assert.Equal(t, "five", Fold(await(t, got), identity[string], func(error) string { return "" }))
}

func TestFlatMapAsync_FailureSkipsMapper(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	got := FlatMapAsync(Failure[int, error](boom), func(v int) *future.Future[Result[string, error]] {
		calls++
		return future.Resolved(Success[string, error]("never"))
	})

	assert.True(t, got.IsResolved())
	assert.Equal(t, 0, calls)

	res := await(t, got)
	assert.True(t, res.IsFailure())
	assert.Same(t, boom, Fold(res, func(string) error { return nil }, identity[error]))
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }
	half := func(v int) Result[int, string] {
		if v%2 != 0 {
			return Failure[int]("odd")
		}
		return Success[int, string](v / 2)
	}

	assert.Equal(t, Success[int, string](8), Map(Success[int, string](4), double))
	assert.Equal(t, Failure[int]("x"), Map(Failure[int]("x"), double))

	assert.Equal(t, Success[int, string](2), FlatMap(Success[int, string](4), half))
	assert.Equal(t, Failure[int]("odd"), FlatMap(Success[int, string](3), half))
	assert.Equal(t, Failure[int]("x"), FlatMap(Failure[int]("x"), half))
}

func TestMapFailure(t *testing.T) {
	t.Parallel()

	toCode := func(e string) int { return len(e) }

	assert.Equal(t, Failure[bool](4), MapFailure(Failure[bool]("nope"), toCode))
	assert.Equal(t, Success[bool, int](true), MapFailure(Success[bool, string](true), toCode))
}
