package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"rideconnect/internal/domain"
	"rideconnect/internal/repository"
)

// BookingService handles transfer booking submissions.
type BookingService struct {
	bookingRepo         repository.BookingRepository
	pricingService      *PricingService
	notificationService *NotificationService
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	pricingService *PricingService,
	notificationService *NotificationService,
) *BookingService {
	return &BookingService{
		bookingRepo:         bookingRepo,
		pricingService:      pricingService,
		notificationService: notificationService,
	}
}

// SubmitBookingRequest contains the parameters for submitting a booking.
type SubmitBookingRequest struct {
	Name                string
	Email               string
	Phone               string
	PickupAddress       string
	DropoffAddress      string
	TransferDate        string
	TransferTime        string
	Passengers          int
	VehicleClass        domain.VehicleClass
	SpecialRequirements string
}

// Submit validates the request, re-prices the transfer server-side (the
// client-quoted price is advisory only), persists the booking, and fires
// the admin notification.
func (s *BookingService) Submit(ctx context.Context, req SubmitBookingRequest) (*domain.Booking, error) {
	if err := s.validateSubmitRequest(req); err != nil {
		return nil, err
	}

	vehicleClass := req.VehicleClass
	if vehicleClass == "" {
		vehicleClass = domain.VehicleClassStandard
	}

	quote := s.pricingService.EstimateFare(ctx, req.PickupAddress, req.DropoffAddress, req.Passengers, vehicleClass)

	booking := &domain.Booking{
		ID:                  uuid.New().String(),
		OrderNumber:         generateOrderNumber(),
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		PickupAddress:       req.PickupAddress,
		DropoffAddress:      req.DropoffAddress,
		TransferDate:        req.TransferDate,
		TransferTime:        req.TransferTime,
		Passengers:          req.Passengers,
		VehicleClass:        vehicleClass,
		PriceUnits:          quote.PriceUnits,
		DistanceKm:          quote.DistanceKm,
		DurationMin:         quote.DurationMin,
		IsCustomQuote:       quote.IsCustomQuote,
		SpecialRequirements: req.SpecialRequirements,
		Status:              domain.BookingStatusPending,
		CreatedAt:           time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Notification failure must not fail the booking.
	if s.notificationService != nil {
		_ = s.notificationService.NotifyBookingReceived(ctx, booking)
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	if id == "" {
		return nil, ErrInvalidBookingID
	}
	return s.bookingRepo.GetByID(ctx, id)
}

// GetBookingByOrderNumber retrieves a booking by its customer-facing
// reference, for customers tracking a submitted transfer.
func (s *BookingService) GetBookingByOrderNumber(ctx context.Context, orderNumber string) (*domain.Booking, error) {
	if orderNumber == "" {
		return nil, ErrInvalidOrderNumber
	}
	return s.bookingRepo.GetByOrderNumber(ctx, orderNumber)
}

// ListBookings retrieves recent bookings for the back office.
func (s *BookingService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

// UpdateStatus moves a booking through its lifecycle (confirmed by the
// operator, or cancelled).
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if id == "" {
		return ErrInvalidBookingID
	}
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled:
	default:
		return ErrInvalidBookingStatus
	}
	return s.bookingRepo.UpdateStatus(ctx, id, status)
}

// validateSubmitRequest validates the booking submission.
func (s *BookingService) validateSubmitRequest(req SubmitBookingRequest) error {
	if req.PickupAddress == "" {
		return ErrInvalidPickupAddress
	}
	if req.DropoffAddress == "" {
		return ErrInvalidDropoffAddress
	}
	if req.Passengers <= 0 {
		return ErrInvalidPassengerCount
	}
	if req.Name == "" || req.Email == "" {
		return ErrInvalidContact
	}
	if req.TransferDate == "" {
		return ErrInvalidTransferDate
	}
	return nil
}

// generateOrderNumber produces a customer-facing reference in the form
// RC-YYMMDD-XXXX.
func generateOrderNumber() string {
	now := time.Now()
	return fmt.Sprintf("RC-%s-%04d", now.Format("060102"), rand.Intn(10000))
}
