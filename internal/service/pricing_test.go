package service

import (
	"context"
	"testing"

	"rideconnect/internal/domain"
	"rideconnect/internal/geo"
)

func newOfflinePricingService() *PricingService {
	// Providers down: the resolver lands on the keyword tier.
	primary := &stubRouteProvider{ready: true, err: geo.ErrUnavailable}
	geocoder := &stubGeocoder{err: geo.ErrUnavailable}
	resolver := NewDistanceResolver(primary, geocoder)
	return NewPricingService(resolver, NewFareCalculator(DefaultFareConfig()))
}

func TestEstimateFare_OfflineKnownRoute(t *testing.T) {
	t.Parallel()

	svc := newOfflinePricingService()

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 2, domain.VehicleClassStandard)

	// Known route 160 km: (10 + 160*1.8) * 0.9 = 268.2 -> 269
	if quote.PriceUnits != 269 {
		t.Errorf("expected price 269, got %d", quote.PriceUnits)
	}
	if quote.DistanceKm != 160 {
		t.Errorf("expected distance 160, got %f", quote.DistanceKm)
	}
}

func TestEstimateFare_OfflineKnownRoute_Minibus(t *testing.T) {
	t.Parallel()

	svc := newOfflinePricingService()

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 10, domain.VehicleClassMinibus)

	// 268.2 * 2.0 = 536.4 -> 537
	if quote.PriceUnits != 537 {
		t.Errorf("expected price 537, got %d", quote.PriceUnits)
	}
}

func TestEstimateFare_DiscountedRegionRoute(t *testing.T) {
	t.Parallel()

	svc := newOfflinePricingService()

	quote := svc.EstimateFare(context.Background(), "Ljubljana, Slovenia", "Venice, Italy", 3, domain.VehicleClassStandard)

	// Known route 240 km at discounted rates: (8 + 240*1.44) * 0.9 = 318.24 -> 319
	if quote.PriceUnits != 319 {
		t.Errorf("expected price 319, got %d", quote.PriceUnits)
	}
}

func TestEstimateFare_EmptyVehicleClassDefaultsToStandard(t *testing.T) {
	t.Parallel()

	svc := newOfflinePricingService()

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 2, "")
	if quote.PriceUnits != 269 {
		t.Errorf("expected standard-class price 269, got %d", quote.PriceUnits)
	}
}

func TestEstimateFare_LargeGroup_CustomQuote(t *testing.T) {
	t.Parallel()

	svc := newOfflinePricingService()

	quote := svc.EstimateFare(context.Background(), "Trieste, Italy", "Venice, Italy", 20, domain.VehicleClassMinibus)

	if !quote.IsCustomQuote {
		t.Error("expected custom quote for 20 passengers")
	}
	if quote.PriceUnits != 0 {
		t.Errorf("expected zero price for custom quote, got %d", quote.PriceUnits)
	}
	if quote.DistanceKm != 160 {
		t.Errorf("expected distance still populated, got %f", quote.DistanceKm)
	}
}

func TestEstimateFare_PanicSubstitutesFallbackQuote(t *testing.T) {
	t.Parallel()

	// A nil resolver panics inside EstimateFare; the recover guard must
	// substitute the last-resort quote instead of propagating.
	svc := NewPricingService(nil, NewFareCalculator(DefaultFareConfig()))

	quote := svc.EstimateFare(context.Background(), "anywhere", "elsewhere", 2, domain.VehicleClassStandard)

	// Global default 200 km: (10 + 200*1.8) * 0.9 = 333
	if quote.PriceUnits != 333 {
		t.Errorf("expected fallback price 333, got %d", quote.PriceUnits)
	}
	if quote.DistanceKm != 200 {
		t.Errorf("expected fallback distance 200, got %f", quote.DistanceKm)
	}
	if quote.IsCustomQuote {
		t.Error("fallback quote must not be a custom quote")
	}
}

func TestEstimateFare_FallbackQuote_MinibusOnlyMarkup(t *testing.T) {
	t.Parallel()

	svc := NewPricingService(nil, NewFareCalculator(DefaultFareConfig()))

	testCases := []struct {
		class     domain.VehicleClass
		wantPrice int
	}{
		{domain.VehicleClassStandard, 333},
		{domain.VehicleClassExecutive, 333}, // no markup in the fallback path
		{domain.VehicleClassVan, 333},
		{domain.VehicleClassMinibus, 666},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.class), func(t *testing.T) {
			t.Parallel()

			quote := svc.EstimateFare(context.Background(), "anywhere", "elsewhere", 2, tc.class)
			if quote.PriceUnits != tc.wantPrice {
				t.Errorf("expected fallback price %d for %s, got %d", tc.wantPrice, tc.class, quote.PriceUnits)
			}
		})
	}
}
