package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func Test_OkAndErrAreMutuallyExclusive(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())
	assert.NoError(t, ok.Err())

	fail := Err[int](errBoom)
	assert.False(t, fail.IsOk())
	assert.True(t, fail.IsErr())
	assert.ErrorIs(t, fail.Err(), errBoom)
}

func Test_ErrWithNilErrorIsStillAFailure(t *testing.T) {
	r := Err[string](nil)
	assert.True(t, r.IsErr())
	assert.Error(t, r.Err())
}

func Test_FromLiftsConventionalPairs(t *testing.T) {
	r := From(10, nil)
	v, err := r.Get()
	assert.NoError(t, err)
	assert.Equal(t, 10, v)

	r = From(0, errBoom)
	_, err = r.Get()
	assert.ErrorIs(t, err, errBoom)
}

func Test_MustGetPanicsOnFailure(t *testing.T) {
	assert.Equal(t, "a", Ok("a").MustGet())
	assert.PanicsWithError(t, errBoom.Error(), func() {
		Err[string](errBoom).MustGet()
	})
}

func Test_GetOrFallsBackOnlyOnFailure(t *testing.T) {
	assert.Equal(t, 7, Ok(7).GetOr(99))
	assert.Equal(t, 99, Err[int](errBoom).GetOr(99))
}

func Test_MatchCallsExactlyOneBranch(t *testing.T) {
	var okCalls, errCalls int

	Ok(1).Match(
		func(int) { okCalls++ },
		func(error) { errCalls++ },
	)
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 0, errCalls)

	Err[int](errBoom).Match(
		func(int) { okCalls++ },
		func(error) { errCalls++ },
	)
	assert.Equal(t, 1, okCalls)
	assert.Equal(t, 1, errCalls)
}

func Test_MapTransformsOnlySuccesses(t *testing.T) {
	r := Map(Ok(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, r.MustGet())

	s := Map(Err[int](errBoom), strconv.Itoa)
	assert.ErrorIs(t, s.Err(), errBoom)
}

func Test_MapIdentityLaw(t *testing.T) {
	id := func(v int) int { return v }

	assert.Equal(t, Ok(5), Map(Ok(5), id))
	assert.Equal(t, Err[int](errBoom), Map(Err[int](errBoom), id))
}

func Test_FlatMapAssociativityLaw(t *testing.T) {
	f := func(v int) Result[int] { return Ok(v + 1) }
	g := func(v int) Result[int] {
		if v%2 != 0 {
			return Err[int](errBoom)
		}
		return Ok(v / 2)
	}

	for _, r := range []Result[int]{Ok(3), Ok(4), Err[int](errBoom)} {
		left := FlatMap(FlatMap(r, f), g)
		right := FlatMap(r, func(v int) Result[int] { return FlatMap(f(v), g) })
		assert.Equal(t, left, right)
	}
}

func Test_FlatMapShortCircuitsOnFailure(t *testing.T) {
	called := false
	r := FlatMap(Err[int](errBoom), func(int) Result[string] {
		called = true
		return Ok("unreachable")
	})

	assert.False(t, called)
	assert.ErrorIs(t, r.Err(), errBoom)
}

func Test_MapErrLeavesSuccessUntouched(t *testing.T) {
	r := Ok(1).MapErr(func(err error) error { return errors.New("wrapped") })
	assert.Equal(t, Ok(1), r)
}

func Test_MapErrTransformsFailurePayload(t *testing.T) {
	wrapped := errors.New("wrapped")
	r := Err[int](errBoom).MapErr(func(error) error { return wrapped })
	assert.ErrorIs(t, r.Err(), wrapped)
}

func Test_CatchRoundTripsTheComputationOutcome(t *testing.T) {
	r := Catch(func() (int, error) { return 3, nil })
	v, err := r.Get()
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	r = Catch(func() (int, error) { return 0, errBoom })
	_, err = r.Get()
	assert.ErrorIs(t, err, errBoom)
}

func Test_CatchRecoversPanicsIntoFailures(t *testing.T) {
	r := Catch(func() (int, error) { panic(errBoom) })
	assert.ErrorIs(t, r.Err(), errBoom)

	r = Catch(func() (int, error) { panic("not an error") })
	assert.True(t, r.IsErr())
}
