package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rideconnect/internal/domain"
	"rideconnect/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `id, order_number, name, email, phone, pickup_address, dropoff_address, transfer_date, transfer_time, passengers, vehicle_class, price_units, distance_km, duration_min, is_custom_quote, special_requirements, status, created_at`

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	status := booking.Status
	if status == "" {
		status = domain.BookingStatusPending
	}

	var specialRequirements sql.NullString
	if booking.SpecialRequirements != "" {
		specialRequirements = sql.NullString{String: booking.SpecialRequirements, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.OrderNumber,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.PickupAddress,
		booking.DropoffAddress,
		booking.TransferDate,
		booking.TransferTime,
		booking.Passengers,
		booking.VehicleClass,
		booking.PriceUnits,
		booking.DistanceKm,
		booking.DurationMin,
		booking.IsCustomQuote,
		specialRequirements,
		status,
		booking.CreatedAt,
	)

	return err
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanBooking(r.q.QueryRowContext(ctx, query, id))
}

// GetByOrderNumber retrieves a booking by its customer-facing order number.
func (r *BookingRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_number = $1`
	return r.scanBooking(r.q.QueryRowContext(ctx, query, orderNumber))
}

// GetAll retrieves recent bookings, newest first.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT 100`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBookingRow(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// UpdateStatus updates the status of an existing booking.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (r *BookingRepository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	booking, err := scanBookingRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func scanBookingRow(s scanner) (*domain.Booking, error) {
	var booking domain.Booking
	var specialRequirements sql.NullString

	err := s.Scan(
		&booking.ID,
		&booking.OrderNumber,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.PickupAddress,
		&booking.DropoffAddress,
		&booking.TransferDate,
		&booking.TransferTime,
		&booking.Passengers,
		&booking.VehicleClass,
		&booking.PriceUnits,
		&booking.DistanceKm,
		&booking.DurationMin,
		&booking.IsCustomQuote,
		&specialRequirements,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if specialRequirements.Valid {
		booking.SpecialRequirements = specialRequirements.String
	}
	return &booking, nil
}
