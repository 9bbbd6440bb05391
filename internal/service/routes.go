package service

import (
	"strings"

	"rideconnect/internal/domain"
)

// knownRoute is an approximate driving distance between a well-known
// city pair served by the company.
type knownRoute struct {
	From       string
	To         string
	DistanceKm float64
}

// knownRoutes lists the common routes; both directions are checked.
var knownRoutes = []knownRoute{
	{"trieste", "venice", 160},
	{"ljubljana", "venice", 240},
	{"zagreb", "venice", 380},
	{"trieste", "ljubljana", 120},
	{"split", "zagreb", 380},
}

// countryDefault is the average cross-country trip distance used when no
// known route matches. Scan order matters: the first keyword hit wins.
type countryDefault struct {
	Keyword    string
	DistanceKm float64
}

var countryDefaults = []countryDefault{
	{"slovenia", 150},
	{"croatia", 200},
	{"italy", 250},
	{"austria", 180},
}

// globalDefaultDistanceKm is the last-resort estimate when nothing matches.
const globalDefaultDistanceKm = 200

// MatchKnownRoute looks both addresses up in the known-route table by
// case-insensitive substring match, in either direction.
func MatchKnownRoute(pickup, dropoff string) (domain.DistanceResult, bool) {
	pickupLower := strings.ToLower(pickup)
	dropoffLower := strings.ToLower(dropoff)

	for _, route := range knownRoutes {
		forward := strings.Contains(pickupLower, route.From) && strings.Contains(dropoffLower, route.To)
		reverse := strings.Contains(pickupLower, route.To) && strings.Contains(dropoffLower, route.From)
		if forward || reverse {
			return distanceAtAverageSpeed(route.DistanceKm), true
		}
	}
	return domain.DistanceResult{}, false
}

// estimateFromKeywords is the final heuristic tier: known routes, then
// country defaults, then the global default.
func estimateFromKeywords(pickup, dropoff string) domain.DistanceResult {
	if result, ok := MatchKnownRoute(pickup, dropoff); ok {
		return result
	}

	pickupLower := strings.ToLower(pickup)
	dropoffLower := strings.ToLower(dropoff)
	for _, cd := range countryDefaults {
		if strings.Contains(pickupLower, cd.Keyword) || strings.Contains(dropoffLower, cd.Keyword) {
			return distanceAtAverageSpeed(cd.DistanceKm)
		}
	}

	return distanceAtAverageSpeed(globalDefaultDistanceKm)
}
