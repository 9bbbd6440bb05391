package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"rideconnect/internal/domain"
)

// QuoteStore caches fare quotes in Redis so repeated lookups for the same
// trip do not re-hit the geocoding providers.
type QuoteStore struct {
	client *redis.Client
}

// NewQuoteStore creates a new QuoteStore.
func NewQuoteStore(client *redis.Client) *QuoteStore {
	return &QuoteStore{client: client}
}

// QuoteCacheTTL bounds how long a cached quote stays valid. Provider data
// and rates move slowly; five minutes keeps quotes fresh enough.
const QuoteCacheTTL = 5 * time.Minute

const quoteCachePrefix = "cache:quote:"

// cachedQuote is the Redis representation of a fare quote.
type cachedQuote struct {
	PriceUnits    int     `json:"price_units"`
	DistanceKm    float64 `json:"distance_km"`
	DurationMin   float64 `json:"duration_min"`
	IsCustomQuote bool    `json:"is_custom_quote"`
}

// quoteKey builds the cache key for a trip. Addresses are normalized the
// same way the providers normalize their query cache keys.
func quoteKey(pickup, dropoff string, passengers int, vehicleClass domain.VehicleClass) string {
	normalize := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return fmt.Sprintf("%s%s|%s|%d|%s", quoteCachePrefix, normalize(pickup), normalize(dropoff), passengers, vehicleClass)
}

// GetQuote retrieves a cached quote. A cache miss returns (nil, nil).
func (s *QuoteStore) GetQuote(ctx context.Context, pickup, dropoff string, passengers int, vehicleClass domain.VehicleClass) (*domain.FareQuote, error) {
	data, err := s.client.Get(ctx, quoteKey(pickup, dropoff, passengers, vehicleClass)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var cached cachedQuote
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &domain.FareQuote{
		PriceUnits:    cached.PriceUnits,
		DistanceKm:    cached.DistanceKm,
		DurationMin:   cached.DurationMin,
		IsCustomQuote: cached.IsCustomQuote,
	}, nil
}

// SetQuote stores a quote in cache.
func (s *QuoteStore) SetQuote(ctx context.Context, pickup, dropoff string, passengers int, vehicleClass domain.VehicleClass, quote domain.FareQuote) error {
	data, err := json.Marshal(cachedQuote{
		PriceUnits:    quote.PriceUnits,
		DistanceKm:    quote.DistanceKm,
		DurationMin:   quote.DurationMin,
		IsCustomQuote: quote.IsCustomQuote,
	})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, quoteKey(pickup, dropoff, passengers, vehicleClass), data, QuoteCacheTTL).Err()
}
