package repository

import (
	"context"

	"rideconnect/internal/domain"
)

// BookingRepository defines the persistence operations for transfer bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetByOrderNumber retrieves a booking by its customer-facing order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Booking, error)

	// GetAll retrieves recent bookings.
	GetAll(ctx context.Context) ([]*domain.Booking, error)

	// UpdateStatus updates the status of an existing booking.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}
