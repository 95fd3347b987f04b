package guard_test

import (
	"errors"
	"testing"

	"shipments/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates the intended embedding pattern
// for a self-validating value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type declaredValue struct {
		amount float64
		guard  guard.ConstructorGuard
	}

	var errNotConstructed = errors.New("DeclaredValue must be created via its factory")

	newDeclaredValue := func(amount float64) declaredValue {
		return declaredValue{amount: amount, guard: guard.NewConstructorGuard()}
	}

	t.Run("factory_construction_validates", func(t *testing.T) {
		dv := newDeclaredValue(500)
		require.NoError(t, dv.guard.Validate(errNotConstructed))
		assert.InDelta(t, 500.0, dv.amount, 0.001)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var dv declaredValue
		err := dv.guard.Validate(errNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	g := guard.NewConstructorGuard()
	copied := g

	testErr := errors.New("not constructed")
	require.NoError(t, g.Validate(testErr))
	require.NoError(t, copied.Validate(testErr))
}
