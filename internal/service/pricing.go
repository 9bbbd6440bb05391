package service

import (
	"context"
	"log"
	"math"

	"rideconnect/internal/domain"
)

// PricingService is the fare-estimation entry point. It composes the
// distance resolver and fare calculator and is total: for non-empty
// addresses and a positive passenger count it always returns a well-formed
// quote, even with every provider unreachable.
type PricingService struct {
	resolver   *DistanceResolver
	calculator *FareCalculator
}

// NewPricingService creates a new PricingService.
func NewPricingService(resolver *DistanceResolver, calculator *FareCalculator) *PricingService {
	return &PricingService{
		resolver:   resolver,
		calculator: calculator,
	}
}

// EstimateFare resolves the trip distance and prices it. The vehicle class
// defaults to Standard when empty. The resolver has its own fallback
// ladder; a recover guard behind it substitutes a last-resort quote, so
// the caller never sees an error.
func (s *PricingService) EstimateFare(ctx context.Context, pickup, dropoff string, passengers int, vehicleClass domain.VehicleClass) (quote domain.FareQuote) {
	if vehicleClass == "" {
		vehicleClass = domain.VehicleClassStandard
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("fare estimation panicked, substituting fallback quote: %v", r)
			quote = s.fallbackQuote(vehicleClass)
		}
	}()

	distance := s.resolver.Resolve(ctx, pickup, dropoff)

	return s.calculator.Calculate(FareRequest{
		Distance:       distance,
		Passengers:     passengers,
		VehicleClass:   vehicleClass,
		PickupAddress:  pickup,
		DropoffAddress: dropoff,
	})
}

// fallbackQuote is the last-resort result: the global default distance at
// standard-region pricing, with no vehicle markup except a requested
// Minibus.
func (s *PricingService) fallbackQuote(vehicleClass domain.VehicleClass) domain.FareQuote {
	config := s.calculator.config

	distance := distanceAtAverageSpeed(globalDefaultDistanceKm)

	price := config.BaseFare + distance.DistanceKm*config.PerKmRate
	if distance.DistanceKm > config.LongTripAboveKm {
		price *= config.LongTripDiscount
	}
	if vehicleClass == domain.VehicleClassMinibus {
		price *= vehicleClass.Multiplier()
	}

	return domain.FareQuote{
		PriceUnits:    int(math.Ceil(price)),
		DistanceKm:    distance.DistanceKm,
		DurationMin:   math.Round(distance.DurationMin),
		IsCustomQuote: false,
	}
}
