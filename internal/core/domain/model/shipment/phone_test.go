package shipment_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	testCases := []struct {
		name   string
		number string
	}{
		{"plain_digits", "5512345678"},
		{"international", "+52 55 1234 5678"},
		{"with_separators", "(55) 1234-5678"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			phone, err := shipment.NewPhone(tc.number)

			require.NoError(t, err)
			assert.Equal(t, tc.number, phone.String())
			require.NoError(t, phone.Validate())
		})
	}
}

func TestNewPhone_InvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		number   string
		expected error
	}{
		{"empty", "", errs.ErrValueIsRequired},
		{"whitespace_only", "   ", errs.ErrValueIsRequired},
		{"too_few_digits", "123456", errs.ErrValueIsInvalid},
		{"letters", "call-me-maybe", errs.ErrValueIsInvalid},
		{"plus_not_leading", "55+12345678", errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := shipment.NewPhone(tc.number)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestPhone_Validate_ZeroValue(t *testing.T) {
	var phone shipment.Phone

	err := phone.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrPhoneIsNotConstructed)
}

func TestRestorePhone(t *testing.T) {
	phone := shipment.RestorePhone("+52 55 1234 5678")

	require.NoError(t, phone.Validate())
	assert.Equal(t, "+52 55 1234 5678", phone.String())
}
