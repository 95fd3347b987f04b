package shipment_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAddress(municipality, borough, neighborhood, subdivision string) (shipment.Address, error) {
	return shipment.NewAddress(
		"Av. Insurgentes Sur", "1602", "Mexico City", "CDMX", "MX", "03940",
		municipality, borough,
		neighborhood, subdivision,
	)
}

func TestNewAddress_SubdivisionPairs(t *testing.T) {
	testCases := []struct {
		name         string
		municipality string
		borough      string
		neighborhood string
		subdivision  string
		wantErr      error
	}{
		{"municipality_and_neighborhood", "Benito Juarez", "", "Del Valle", "", nil},
		{"borough_and_subdivision", "", "Coyoacan", "", "Romero de Terreros", nil},
		{"municipality_and_subdivision", "Benito Juarez", "", "", "Romero de Terreros", nil},
		{"borough_and_neighborhood", "", "Coyoacan", "Del Valle", "", nil},
		{
			"both_municipality_and_borough", "Benito Juarez", "Coyoacan", "Del Valle", "",
			shipment.ErrMunicipalityBoroughConflict,
		},
		{
			"neither_municipality_nor_borough", "", "", "Del Valle", "",
			shipment.ErrMunicipalityBoroughConflict,
		},
		{
			"both_neighborhood_and_subdivision", "Benito Juarez", "", "Del Valle", "Romero de Terreros",
			shipment.ErrNeighborhoodSubdivisionConflict,
		},
		{
			"neither_neighborhood_nor_subdivision", "Benito Juarez", "", "", "",
			shipment.ErrNeighborhoodSubdivisionConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			address, err := buildAddress(tc.municipality, tc.borough, tc.neighborhood, tc.subdivision)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, address.Validate())
			assert.Equal(t, tc.municipality, address.Municipality())
			assert.Equal(t, tc.borough, address.Borough())
			assert.Equal(t, tc.neighborhood, address.Neighborhood())
			assert.Equal(t, tc.subdivision, address.Subdivision())
		})
	}
}

func TestNewAddress_BothPairsViolated_ReportsBoth(t *testing.T) {
	_, err := buildAddress("Benito Juarez", "Coyoacan", "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrMunicipalityBoroughConflict)
	assert.ErrorIs(t, err, shipment.ErrNeighborhoodSubdivisionConflict)
}

func TestNewAddress_OtherFieldsPassThrough(t *testing.T) {
	address, err := shipment.NewAddress(
		"", "", "", "", "", "",
		"Benito Juarez", "",
		"Del Valle", "",
	)

	require.NoError(t, err)
	assert.Empty(t, address.Street())
	assert.Empty(t, address.City())
	assert.Empty(t, address.PostalCode())
}

func TestNewAddress_TrimsFields(t *testing.T) {
	address, err := shipment.NewAddress(
		"  Av. Insurgentes Sur  ", " 1602 ", " Mexico City ", " CDMX ", " MX ", " 03940 ",
		"  Benito Juarez  ", "",
		"  Del Valle  ", "",
	)

	require.NoError(t, err)
	assert.Equal(t, "Av. Insurgentes Sur", address.Street())
	assert.Equal(t, "1602", address.Number())
	assert.Equal(t, "Mexico City", address.City())
	assert.Equal(t, "CDMX", address.State())
	assert.Equal(t, "MX", address.Country())
	assert.Equal(t, "03940", address.PostalCode())
	assert.Equal(t, "Benito Juarez", address.Municipality())
	assert.Equal(t, "Del Valle", address.Neighborhood())
}

func TestAddress_Validate_ZeroValue(t *testing.T) {
	var address shipment.Address

	err := address.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrAddressIsNotConstructed)
}

func TestRestoreAddress(t *testing.T) {
	address := shipment.RestoreAddress(
		"Av. Insurgentes Sur", "1602", "Mexico City", "CDMX", "MX", "03940",
		"Benito Juarez", "",
		"Del Valle", "",
	)

	require.NoError(t, address.Validate())
	assert.Equal(t, "Av. Insurgentes Sur", address.Street())
	assert.Equal(t, "Benito Juarez", address.Municipality())
}
