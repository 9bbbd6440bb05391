package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"rideconnect/internal/domain"
	"rideconnect/internal/geo"
)

const (
	earthRadiusKm = 6371.0

	// roadNetworkFactor inflates a straight-line distance to approximate
	// real road distance.
	roadNetworkFactor = 1.3

	// averageSpeedKmh is the flat speed assumed when a routing provider
	// cannot supply a real duration.
	averageSpeedKmh = 60.0
)

// RouteProvider is a routing backend with a readiness gate. Implemented by
// geo.GoogleProvider.
type RouteProvider interface {
	Ready() bool
	RouteDistance(ctx context.Context, origin, destination string) (domain.DistanceResult, error)
}

// DistanceResolver produces a single authoritative DistanceResult for an
// origin/destination pair. It degrades from the route API to geocode plus
// haversine to keyword heuristics, and always returns a result.
type DistanceResolver struct {
	primary   RouteProvider
	secondary geo.Geocoder
}

// NewDistanceResolver creates a new DistanceResolver.
func NewDistanceResolver(primary RouteProvider, secondary geo.Geocoder) *DistanceResolver {
	return &DistanceResolver{
		primary:   primary,
		secondary: secondary,
	}
}

// Resolve returns the distance and duration for a trip. Provider errors are
// absorbed at each tier; the keyword tier cannot fail.
func (r *DistanceResolver) Resolve(ctx context.Context, pickup, dropoff string) domain.DistanceResult {
	if r.primary != nil && r.primary.Ready() {
		result, err := r.primary.RouteDistance(ctx, pickup, dropoff)
		if err == nil {
			return roundResult(result)
		}
		log.Printf("primary route lookup failed, falling back to geocoding: %v", err)
	}

	result, err := r.resolveByGeocoding(ctx, pickup, dropoff)
	if err == nil {
		return roundResult(result)
	}
	log.Printf("geocode fallback failed, using keyword estimate: %v", err)

	return roundResult(estimateFromKeywords(pickup, dropoff))
}

// resolveByGeocoding geocodes both endpoints independently and approximates
// driving distance from the great-circle distance.
func (r *DistanceResolver) resolveByGeocoding(ctx context.Context, pickup, dropoff string) (domain.DistanceResult, error) {
	if r.secondary == nil {
		return domain.DistanceResult{}, geo.ErrUnavailable
	}

	pickupCoords, err := r.secondary.Geocode(ctx, pickup)
	if err != nil {
		return domain.DistanceResult{}, fmt.Errorf("%w: pickup %q: %v", ErrUnresolvedAddress, pickup, err)
	}

	dropoffCoords, err := r.secondary.Geocode(ctx, dropoff)
	if err != nil {
		return domain.DistanceResult{}, fmt.Errorf("%w: dropoff %q: %v", ErrUnresolvedAddress, dropoff, err)
	}

	straightLine := haversineKm(pickupCoords, dropoffCoords)
	return distanceAtAverageSpeed(straightLine * roadNetworkFactor), nil
}

// distanceAtAverageSpeed derives a duration for a driving distance assuming
// the flat average speed. At 60 km/h the minute count equals the km count.
func distanceAtAverageSpeed(distanceKm float64) domain.DistanceResult {
	return domain.DistanceResult{
		DistanceKm:  distanceKm,
		DurationMin: distanceKm / averageSpeedKmh * 60,
	}
}

// roundResult rounds distance to 1 decimal km and duration to whole minutes.
func roundResult(result domain.DistanceResult) domain.DistanceResult {
	return domain.DistanceResult{
		DistanceKm:  math.Round(result.DistanceKm*10) / 10,
		DurationMin: math.Round(result.DurationMin),
	}
}

// haversineKm returns the great-circle distance in kilometres between two
// points in decimal degrees.
func haversineKm(a, b domain.Coordinates) float64 {
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLng := degreesToRadians(b.Longitude - a.Longitude)

	rLat1 := degreesToRadians(a.Latitude)
	rLat2 := degreesToRadians(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
