package result_test

import (
	"errors"
	"testing"

	"shipments/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	res := result.Success(42)

	assert.True(t, res.IsSuccess())
	assert.False(t, res.IsFailure())
	require.NoError(t, res.Err())
	assert.Equal(t, 42, res.Value())
}

func TestFailure(t *testing.T) {
	cause := errors.New("first name is required")
	res := result.Failure[string](cause)

	assert.False(t, res.IsSuccess())
	assert.True(t, res.IsFailure())
	require.ErrorIs(t, res.Err(), cause)
}

func TestFailure_NilError(t *testing.T) {
	res := result.Failure[int](nil)

	assert.True(t, res.IsFailure())
	require.Error(t, res.Err())
}

func TestValue_PanicsOnFailure(t *testing.T) {
	res := result.Failure[int](errors.New("boom"))

	assert.Panics(t, func() {
		_ = res.Value()
	})
}

func TestOf(t *testing.T) {
	t.Run("wraps_success", func(t *testing.T) {
		res := result.Of("ok", nil)
		assert.True(t, res.IsSuccess())
		assert.Equal(t, "ok", res.Value())
	})

	t.Run("wraps_failure", func(t *testing.T) {
		cause := errors.New("invalid")
		res := result.Of("", cause)
		assert.True(t, res.IsFailure())
		require.ErrorIs(t, res.Err(), cause)
	})
}

func TestJoin(t *testing.T) {
	t.Run("all_success_returns_nil", func(t *testing.T) {
		err := result.Join(result.Success(1), result.Success("two"))
		require.NoError(t, err)
	})

	t.Run("collects_all_failures", func(t *testing.T) {
		first := errors.New("phone is invalid")
		second := errors.New("last name is required")

		err := result.Join(
			result.Failure[int](first),
			result.Success("ok"),
			result.Failure[string](second),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, first)
		require.ErrorIs(t, err, second)
	})

	t.Run("mixed_value_types_aggregate", func(t *testing.T) {
		cause := errors.New("declared value is invalid")
		err := result.Join(result.Success(3.14), result.Failure[bool](cause))
		require.ErrorIs(t, err, cause)
	})
}
