package shipment

import (
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

// ErrPackageDimensionsAreNotConstructed is returned when validating a
// zero-value PackageDimensions.
var ErrPackageDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"PackageDimensions must be created via NewPackageDimensions")

// volumetricDivisor converts cubic centimeters into the dimensional weight
// used by carriers: volumetric kg = (h * w * l) / 6000.
const volumetricDivisor = 6000.0

// PackageDimensions holds the physical measurements of a package and derives
// its billing weight. Zero and negative dimensions are currently accepted;
// bounds are a pending business decision.
type PackageDimensions struct {
	heightCm float64
	widthCm  float64
	lengthCm float64
	weightKg float64

	guard guard.ConstructorGuard
}

// NewPackageDimensions creates a PackageDimensions value from measurements
// in centimeters and kilograms.
func NewPackageDimensions(heightCm, widthCm, lengthCm, weightKg float64) (PackageDimensions, error) {
	return PackageDimensions{
		heightCm: heightCm,
		widthCm:  widthCm,
		lengthCm: lengthCm,
		weightKg: weightKg,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestorePackageDimensions reconstructs a PackageDimensions from stored data.
// Reserved for the persistence mapping layer.
func RestorePackageDimensions(heightCm, widthCm, lengthCm, weightKg float64) PackageDimensions {
	return PackageDimensions{
		heightCm: heightCm,
		widthCm:  widthCm,
		lengthCm: lengthCm,
		weightKg: weightKg,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate checks if the PackageDimensions was properly constructed.
func (p PackageDimensions) Validate() error {
	return p.guard.Validate(ErrPackageDimensionsAreNotConstructed)
}

// HeightCm returns the package height in centimeters.
func (p PackageDimensions) HeightCm() float64 { return p.heightCm }

// WidthCm returns the package width in centimeters.
func (p PackageDimensions) WidthCm() float64 { return p.widthCm }

// LengthCm returns the package length in centimeters.
func (p PackageDimensions) LengthCm() float64 { return p.lengthCm }

// WeightKg returns the physical weight in kilograms.
func (p PackageDimensions) WeightKg() float64 { return p.weightKg }

// VolumetricWeightKg returns the dimensional weight in kilograms.
func (p PackageDimensions) VolumetricWeightKg() float64 {
	return p.heightCm * p.widthCm * p.lengthCm / volumetricDivisor
}

// BillableWeightKg returns the weight used for pricing: the greater of the
// physical and the volumetric weight.
func (p PackageDimensions) BillableWeightKg() float64 {
	return max(p.weightKg, p.VolumetricWeightKg())
}
