package shipment

import (
	"errors"
	"strings"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress")

// Addresses carry two regional subdivision pairs whose members are mutually
// exclusive: exactly one of municipality/borough and exactly one of
// neighborhood/subdivision must be present. Which member applies depends on
// the regional addressing scheme; supplying both, or neither, is a
// contradiction rejected at construction time.
var (
	ErrMunicipalityBoroughConflict = errs.NewValueIsInvalidErrorWithCause(
		"municipality/borough",
		errors.New("exactly one of municipality or borough must be provided"),
	)
	ErrNeighborhoodSubdivisionConflict = errs.NewValueIsInvalidErrorWithCause(
		"neighborhood/subdivision",
		errors.New("exactly one of neighborhood or subdivision must be provided"),
	)
)

// Address is an immutable postal address value object. An empty string means
// the field is absent; only the two subdivision pairs are validated, the
// remaining fields pass through as provided.
type Address struct { //nolint:recvcheck //using for validation
	street       string
	number       string
	city         string
	state        string
	country      string
	postalCode   string
	municipality string
	borough      string
	neighborhood string
	subdivision  string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Exactly one of municipality/borough
// and exactly one of neighborhood/subdivision must be non-empty.
func NewAddress(
	street, number, city, state, country, postalCode string,
	municipality, borough string,
	neighborhood, subdivision string,
) (Address, error) {
	address := Address{
		street:     strings.TrimSpace(street),
		number:     strings.TrimSpace(number),
		city:       strings.TrimSpace(city),
		state:      strings.TrimSpace(state),
		country:    strings.TrimSpace(country),
		postalCode: strings.TrimSpace(postalCode),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setMunicipalityOrBorough(municipality, borough),
		address.setNeighborhoodOrSubdivision(neighborhood, subdivision),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// RestoreAddress reconstructs an Address from already-trusted stored data
// without re-validating. Reserved for the persistence mapping layer.
func RestoreAddress(
	street, number, city, state, country, postalCode string,
	municipality, borough string,
	neighborhood, subdivision string,
) Address {
	return Address{
		street:       street,
		number:       number,
		city:         city,
		state:        state,
		country:      country,
		postalCode:   postalCode,
		municipality: municipality,
		borough:      borough,
		neighborhood: neighborhood,
		subdivision:  subdivision,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate checks if the Address was properly constructed.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string { return a.street }

// Number returns the street number.
func (a Address) Number() string { return a.number }

// City returns the city name.
func (a Address) City() string { return a.city }

// State returns the state or province.
func (a Address) State() string { return a.state }

// Country returns the country name.
func (a Address) Country() string { return a.country }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Municipality returns the municipality, empty when the address uses a borough.
func (a Address) Municipality() string { return a.municipality }

// Borough returns the borough, empty when the address uses a municipality.
func (a Address) Borough() string { return a.borough }

// Neighborhood returns the neighborhood, empty when the address uses a subdivision.
func (a Address) Neighborhood() string { return a.neighborhood }

// Subdivision returns the subdivision, empty when the address uses a neighborhood.
func (a Address) Subdivision() string { return a.subdivision }

func (a *Address) setMunicipalityOrBorough(municipality, borough string) error {
	municipality = strings.TrimSpace(municipality)
	borough = strings.TrimSpace(borough)

	if (municipality == "") == (borough == "") {
		return ErrMunicipalityBoroughConflict
	}

	a.municipality = municipality
	a.borough = borough
	return nil
}

func (a *Address) setNeighborhoodOrSubdivision(neighborhood, subdivision string) error {
	neighborhood = strings.TrimSpace(neighborhood)
	subdivision = strings.TrimSpace(subdivision)

	if (neighborhood == "") == (subdivision == "") {
		return ErrNeighborhoodSubdivisionConflict
	}

	a.neighborhood = neighborhood
	a.subdivision = subdivision
	return nil
}
