package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"rideconnect/internal/domain"
)

// GoogleProvider is the primary provider. It offers true driving-route
// distance via the Distance Matrix API and point geocoding as a byproduct.
type GoogleProvider struct {
	client  *maps.Client
	region  string
	timeout time.Duration
	cache   *queryCache
}

// GoogleConfig holds the Google Maps provider configuration.
type GoogleConfig struct {
	APIKey        string
	Region        string        // region bias for geocoding, e.g. "it"
	Timeout       time.Duration // per-request budget
	CacheCapacity int
}

// NewGoogleProvider creates the primary provider. Returns an unready
// provider (not an error) when no API key is configured, so callers can
// fall through to the secondary path.
func NewGoogleProvider(cfg GoogleConfig) (*GoogleProvider, error) {
	p := &GoogleProvider{
		region:  cfg.Region,
		timeout: cfg.Timeout,
		cache:   newQueryCache(cfg.CacheCapacity),
	}
	if p.timeout <= 0 {
		p.timeout = 10 * time.Second
	}

	if cfg.APIKey == "" {
		return p, nil
	}

	client, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	p.client = client
	return p, nil
}

// Ready reports whether the provider is configured and usable.
func (p *GoogleProvider) Ready() bool {
	return p != nil && p.client != nil
}

// RouteDistance returns the driving distance and duration between two
// free-text addresses using the Distance Matrix API.
func (p *GoogleProvider) RouteDistance(ctx context.Context, origin, destination string) (domain.DistanceResult, error) {
	if !p.Ready() {
		return domain.DistanceResult{}, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	})
	if err != nil {
		return domain.DistanceResult{}, mapProviderError(err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return domain.DistanceResult{}, ErrNotFound
	}

	element := resp.Rows[0].Elements[0]
	switch element.Status {
	case "OK":
	case "ZERO_RESULTS":
		// Both endpoints geocoded but no drivable path connects them.
		return domain.DistanceResult{}, ErrNoRoute
	case "NOT_FOUND":
		return domain.DistanceResult{}, ErrNotFound
	default:
		return domain.DistanceResult{}, fmt.Errorf("distance matrix element status %s", element.Status)
	}

	return domain.DistanceResult{
		DistanceKm:  float64(element.Distance.Meters) / 1000,
		DurationMin: element.Duration.Minutes(),
	}, nil
}

// Geocode resolves an address to coordinates via the Geocoding API.
func (p *GoogleProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	if !p.Ready() {
		return domain.Coordinates{}, ErrUnavailable
	}

	key := normalizeQuery(address)
	if coords, ok := p.cache.Get(key); ok {
		return coords, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	results, err := p.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  p.region,
	})
	if err != nil {
		return domain.Coordinates{}, mapProviderError(err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, ErrNotFound
	}

	coords := domain.Coordinates{
		Latitude:  results[0].Geometry.Location.Lat,
		Longitude: results[0].Geometry.Location.Lng,
	}
	p.cache.Put(key, coords)
	return coords, nil
}

// mapProviderError translates transport and API errors from the maps client
// onto the provider error taxonomy.
func mapProviderError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, context.Canceled):
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "OVER_QUERY_LIMIT"), strings.Contains(msg, "OVER_DAILY_LIMIT"):
		return ErrRateLimited
	case strings.Contains(msg, "ZERO_RESULTS"):
		return ErrNotFound
	default:
		return fmt.Errorf("maps api error: %w", err)
	}
}
