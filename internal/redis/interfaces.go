package redis

import (
	"context"

	"rideconnect/internal/domain"
)

// QuoteStoreInterface defines the interface for fare-quote caching.
// This interface allows for testing with mock implementations.
type QuoteStoreInterface interface {
	GetQuote(ctx context.Context, pickup, dropoff string, passengers int, vehicleClass domain.VehicleClass) (*domain.FareQuote, error)
	SetQuote(ctx context.Context, pickup, dropoff string, passengers int, vehicleClass domain.VehicleClass, quote domain.FareQuote) error
}

// Ensure concrete types implement interfaces.
var _ QuoteStoreInterface = (*QuoteStore)(nil)
