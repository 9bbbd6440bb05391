package geo

import (
	"context"
	"errors"

	"rideconnect/internal/domain"
)

var (
	// ErrNotFound is returned when a geocoding query yields zero results.
	ErrNotFound = errors.New("no results for address")

	// ErrRateLimited is returned when the backend refuses due to quota.
	ErrRateLimited = errors.New("provider rate limit exceeded")

	// ErrTimeout is returned when no response arrives within the bounded wait.
	ErrTimeout = errors.New("provider timed out")

	// ErrNoRoute is returned when both endpoints resolve but no drivable
	// path connects them.
	ErrNoRoute = errors.New("no drivable route between endpoints")

	// ErrUnavailable is returned when the backend is not configured or not
	// ready to serve requests.
	ErrUnavailable = errors.New("provider unavailable")
)

// Geocoder resolves a free-text address into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// Router resolves an origin/destination pair directly into a route-based
// distance and duration.
type Router interface {
	RouteDistance(ctx context.Context, origin, destination string) (domain.DistanceResult, error)
}
