package service

import "testing"

func TestMatchKnownRoute(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		pickup  string
		dropoff string
		wantKm  float64
		wantOK  bool
	}{
		{"forward direction", "Trieste centrale", "Venice Marco Polo", 160, true},
		{"reverse direction", "Venice Marco Polo", "Trieste centrale", 160, true},
		{"case insensitive", "LJUBLJANA", "VENICE", 240, true},
		{"substring inside longer address", "Hotel Esplanade, Zagreb, Croatia", "Piazzale Roma, Venice", 380, true},
		{"no match", "Milan", "Rome", 0, false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, ok := MatchKnownRoute(tc.pickup, tc.dropoff)
			if ok != tc.wantOK {
				t.Fatalf("MatchKnownRoute(%q, %q) ok = %v, want %v", tc.pickup, tc.dropoff, ok, tc.wantOK)
			}
			if ok && result.DistanceKm != tc.wantKm {
				t.Errorf("expected distance %f, got %f", tc.wantKm, result.DistanceKm)
			}
		})
	}
}

func TestEstimateFromKeywords_CountryDefaults(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		pickup  string
		dropoff string
		wantKm  float64
	}{
		{"slovenia default", "Maribor, Slovenia", "somewhere", 150},
		{"croatia default", "somewhere", "Pula, Croatia", 200},
		{"italy default", "Bologna, Italy", "somewhere", 250},
		{"austria default", "Innsbruck, Austria", "somewhere", 180},
		{"global default when nothing matches", "nowhere", "elsewhere", 200},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := estimateFromKeywords(tc.pickup, tc.dropoff)
			if result.DistanceKm != tc.wantKm {
				t.Errorf("expected distance %f, got %f", tc.wantKm, result.DistanceKm)
			}
			// Duration is derived at the flat average speed: 60 km/h means
			// minutes equal kilometres.
			if result.DurationMin != tc.wantKm {
				t.Errorf("expected duration %f, got %f", tc.wantKm, result.DurationMin)
			}
		})
	}
}

func TestEstimateFromKeywords_KnownRouteBeatsCountryDefault(t *testing.T) {
	t.Parallel()

	// Both addresses carry country keywords, but the known city pair wins.
	result := estimateFromKeywords("Trieste, Italy", "Venice, Italy")
	if result.DistanceKm != 160 {
		t.Errorf("expected known-route distance 160, got %f", result.DistanceKm)
	}
}
