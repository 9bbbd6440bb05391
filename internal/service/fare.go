package service

import (
	"math"

	"rideconnect/internal/domain"
)

// FareConfig contains the fare calculation constants.
type FareConfig struct {
	BaseFare           float64 // standard-region base fare in EUR
	PerKmRate          float64 // standard-region rate per km in EUR
	RegionalDiscount   float64 // multiplier for the discounted region group
	ShortTripSurcharge float64 // flat surcharge for short standard-region trips
	ShortTripBelowKm   float64 // surcharge applies strictly below this distance
	LongTripDiscount   float64 // multiplier for long trips
	LongTripAboveKm    float64 // discount applies strictly above this distance
}

// DefaultFareConfig returns the production fare configuration.
func DefaultFareConfig() FareConfig {
	return FareConfig{
		BaseFare:           10,
		PerKmRate:          1.8,
		RegionalDiscount:   0.8,
		ShortTripSurcharge: 30,
		ShortTripBelowKm:   50,
		LongTripDiscount:   0.9,
		LongTripAboveKm:    50,
	}
}

// FareCalculator converts a resolved distance plus trip context into a
// FareQuote. It is a pure function of its inputs.
type FareCalculator struct {
	config FareConfig
}

// NewFareCalculator creates a new FareCalculator.
func NewFareCalculator(config FareConfig) *FareCalculator {
	return &FareCalculator{config: config}
}

// FareRequest contains the context for one fare calculation.
type FareRequest struct {
	Distance       domain.DistanceResult
	Passengers     int
	VehicleClass   domain.VehicleClass
	PickupAddress  string
	DropoffAddress string
}

// Calculate prices a trip. Groups above the standard-vehicle ceiling get a
// custom-quote result with distance and duration still populated for display.
func (c *FareCalculator) Calculate(req FareRequest) domain.FareQuote {
	if req.Passengers > domain.MaxStandardPassengers {
		return domain.FareQuote{
			PriceUnits:    0,
			DistanceKm:    req.Distance.DistanceKm,
			DurationMin:   req.Distance.DurationMin,
			IsCustomQuote: true,
		}
	}

	region := classifyTrip(req.PickupAddress, req.DropoffAddress)
	profile := c.profileFor(region)

	price := profile.BaseFare + req.Distance.DistanceKm*profile.PerKmRate

	switch {
	case region == domain.RegionStandard && req.Distance.DistanceKm < c.config.ShortTripBelowKm:
		// Short-trip surcharge applies to the standard region only.
		price += c.config.ShortTripSurcharge
	case req.Distance.DistanceKm > c.config.LongTripAboveKm:
		// Long-trip discount applies regardless of region. A distance of
		// exactly 50 km triggers neither adjustment.
		price *= c.config.LongTripDiscount
	}

	price *= req.VehicleClass.Multiplier()

	return domain.FareQuote{
		PriceUnits:    int(math.Ceil(price)),
		DistanceKm:    req.Distance.DistanceKm,
		DurationMin:   req.Distance.DurationMin,
		IsCustomQuote: false,
	}
}

// profileFor returns the pricing profile for a trip region.
func (c *FareCalculator) profileFor(region domain.RegionTag) domain.RegionalPricingProfile {
	profile := domain.RegionalPricingProfile{
		BaseFare:  c.config.BaseFare,
		PerKmRate: c.config.PerKmRate,
	}
	if region == domain.RegionDiscounted {
		profile.BaseFare *= c.config.RegionalDiscount
		profile.PerKmRate *= c.config.RegionalDiscount
	}
	return profile
}
