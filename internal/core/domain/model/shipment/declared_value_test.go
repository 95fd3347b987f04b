package shipment_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeclaredValue(t *testing.T) {
	value, err := shipment.NewDeclaredValue(1500.50)

	require.NoError(t, err)
	require.NoError(t, value.Validate())
	assert.InDelta(t, 1500.50, value.Amount(), 1e-9)
}

func TestNewDeclaredValue_ZeroAmount(t *testing.T) {
	value, err := shipment.NewDeclaredValue(0)

	require.NoError(t, err)
	assert.InDelta(t, 0.0, value.Amount(), 1e-9)
}

func TestDeclaredValue_Validate_ZeroValue(t *testing.T) {
	var value shipment.DeclaredValue

	err := value.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrDeclaredValueIsNotConstructed)
}

func TestRestoreDeclaredValue(t *testing.T) {
	value := shipment.RestoreDeclaredValue(1500.50)

	require.NoError(t, value.Validate())
	assert.InDelta(t, 1500.50, value.Amount(), 1e-9)
}
