package tests

import (
	"context"
	"testing"

	"rideconnect/internal/domain"
	"rideconnect/internal/geo"
	"rideconnect/internal/service"
)

// ──────────────────────────────────────────────
// 1. FARE ESTIMATION END TO END
// ──────────────────────────────────────────────

func newPricingService(provider *MockRouteProvider, geocoder *MockGeocoder) *service.PricingService {
	resolver := service.NewDistanceResolver(provider, geocoder)
	calculator := service.NewFareCalculator(service.DefaultFareConfig())
	return service.NewPricingService(resolver, calculator)
}

func TestFareEstimation_RouteProviderDistance(t *testing.T) {
	t.Parallel()

	provider := NewMockRouteProvider()
	provider.SetResult(domain.DistanceResult{DistanceKm: 115.3, DurationMin: 95}, nil)

	svc := newPricingService(provider, NewMockGeocoder())

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 2, domain.VehicleClassStandard)

	// (10 + 115.3*1.8) * 0.9 = 195.786 -> 196
	if quote.PriceUnits != 196 {
		t.Errorf("expected price 196, got %d", quote.PriceUnits)
	}
	if quote.DistanceKm != 115.3 {
		t.Errorf("expected provider distance 115.3, got %f", quote.DistanceKm)
	}
	if quote.DurationMin != 95 {
		t.Errorf("expected provider duration 95, got %f", quote.DurationMin)
	}
}

func TestFareEstimation_DegradesToGeocoding(t *testing.T) {
	t.Parallel()

	provider := NewMockRouteProvider()
	provider.SetResult(domain.DistanceResult{}, geo.ErrRateLimited)

	geocoder := NewMockGeocoder()
	geocoder.AddAddress("Trieste, Italy", domain.Coordinates{Latitude: 45.6495, Longitude: 13.7768})
	geocoder.AddAddress("Venice, Italy", domain.Coordinates{Latitude: 45.4408, Longitude: 12.3155})

	svc := newPricingService(provider, geocoder)

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 2, domain.VehicleClassStandard)

	if provider.RouteCallCount != 1 {
		t.Errorf("expected 1 route provider attempt, got %d", provider.RouteCallCount)
	}
	if geocoder.GeocodeCallCount != 2 {
		t.Errorf("expected both endpoints geocoded, got %d calls", geocoder.GeocodeCallCount)
	}

	// Great-circle ~115 km inflated by the road factor lands near 150 km.
	if quote.DistanceKm < 140 || quote.DistanceKm > 160 {
		t.Errorf("expected approximated road distance ~150 km, got %f", quote.DistanceKm)
	}
	if quote.PriceUnits == 0 {
		t.Error("expected a non-zero price")
	}
}

func TestFareEstimation_ProviderTimeout_DegradesGracefully(t *testing.T) {
	t.Parallel()

	provider := NewMockRouteProvider()
	provider.SetResult(domain.DistanceResult{}, ErrMockTimeout)

	geocoder := NewMockGeocoder()
	geocoder.AddAddress("Trieste, Italy", domain.Coordinates{Latitude: 45.6495, Longitude: 13.7768})
	geocoder.AddAddress("Venice, Italy", domain.Coordinates{Latitude: 45.4408, Longitude: 12.3155})

	svc := newPricingService(provider, geocoder)

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 2, domain.VehicleClassStandard)

	if geocoder.GeocodeCallCount != 2 {
		t.Errorf("expected geocode fallback after provider timeout, got %d calls", geocoder.GeocodeCallCount)
	}
	if quote.PriceUnits == 0 {
		t.Error("expected a non-zero price after provider timeout")
	}
}

func TestFareEstimation_AllProvidersDown_StillQuotes(t *testing.T) {
	t.Parallel()

	provider := NewMockRouteProvider()
	provider.SetResult(domain.DistanceResult{}, geo.ErrUnavailable)

	geocoder := NewMockGeocoder()
	geocoder.Err = geo.ErrUnavailable

	svc := newPricingService(provider, geocoder)

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 2, domain.VehicleClassStandard)

	// Known route table: 160 km, (10 + 160*1.8) * 0.9 = 268.2 -> 269
	if quote.PriceUnits != 269 {
		t.Errorf("expected offline price 269, got %d", quote.PriceUnits)
	}
	if quote.IsCustomQuote {
		t.Error("expected a priced quote")
	}
}

func TestFareEstimation_LargeGroup_CustomQuoteKeepsDistance(t *testing.T) {
	t.Parallel()

	provider := NewMockRouteProvider()
	provider.SetResult(domain.DistanceResult{DistanceKm: 160, DurationMin: 120}, nil)

	svc := newPricingService(provider, NewMockGeocoder())

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 20, domain.VehicleClassMinibus)

	if !quote.IsCustomQuote {
		t.Error("expected custom quote for 20 passengers")
	}
	if quote.PriceUnits != 0 {
		t.Errorf("expected zero price, got %d", quote.PriceUnits)
	}
	if quote.DistanceKm != 160 || quote.DurationMin != 120 {
		t.Errorf("expected distance and duration preserved, got %f km %f min", quote.DistanceKm, quote.DurationMin)
	}
}
