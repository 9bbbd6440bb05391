package domain

// VehicleClass represents the billing class of a transfer vehicle.
type VehicleClass string

const (
	VehicleClassStandard  VehicleClass = "STANDARD"
	VehicleClassExecutive VehicleClass = "EXECUTIVE"
	VehicleClassVan       VehicleClass = "VAN"
	VehicleClassMinibus   VehicleClass = "MINIBUS"
)

// Multiplier returns the price multiplier applied for the vehicle class.
func (v VehicleClass) Multiplier() float64 {
	switch v {
	case VehicleClassExecutive:
		return 1.2
	case VehicleClassVan:
		return 1.4
	case VehicleClassMinibus:
		return 2.0
	default:
		return 1.0
	}
}

// Capacity returns the passenger ceiling for the vehicle class. The pricing
// engine does not enforce it; capacity filtering is a caller concern.
func (v VehicleClass) Capacity() int {
	switch v {
	case VehicleClassExecutive:
		return 3
	case VehicleClassVan:
		return 8
	case VehicleClassMinibus:
		return 16
	default:
		return 4
	}
}

// MaxStandardPassengers is the largest group any standard vehicle class can
// carry. Bigger groups require a manually prepared quote.
const MaxStandardPassengers = 16

// Coordinates is a geographic point resolved from a free-text address.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// DistanceResult is the resolved distance and travel time for a trip.
type DistanceResult struct {
	DistanceKm  float64
	DurationMin float64
}

// FareQuote is the priced result of one fare estimation.
// PriceUnits is whole euros, always rounded up.
type FareQuote struct {
	PriceUnits  int
	DistanceKm  float64
	DurationMin float64
	// IsCustomQuote is set when the group is too large for automated
	// pricing; PriceUnits is 0 and a manual quote must follow.
	IsCustomQuote bool
}

// RegionTag classifies a trip's pricing geography.
type RegionTag string

const (
	// RegionStandard is the default (Italian) pricing geography.
	RegionStandard RegionTag = "STANDARD"
	// RegionDiscounted covers the Slovenia/Croatia keyword group (20% off).
	RegionDiscounted RegionTag = "DISCOUNTED"
	// RegionNeutral covers Austria: standard rates, but exempt from the
	// short-trip surcharge.
	RegionNeutral RegionTag = "NEUTRAL"
)

// RegionalPricingProfile is a base-fare/per-km pair applied uniformly
// within a keyword-matched geography.
type RegionalPricingProfile struct {
	BaseFare  float64
	PerKmRate float64
}
