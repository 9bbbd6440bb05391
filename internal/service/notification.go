package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"rideconnect/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingReceived  NotificationType = "BOOKING_RECEIVED"
	NotificationCustomQuoteAsked NotificationType = "CUSTOM_QUOTE_REQUESTED"
)

// Notification represents a composed message ready for delivery.
type Notification struct {
	Type      NotificationType
	Recipient string
	Subject   string
	Params    map[string]interface{}
	CreatedAt time.Time
}

// NotificationService composes booking notifications for the back office.
// Actual delivery (email/SMS transport) lives outside this service; the
// composed message is handed to a transport stub that logs it.
type NotificationService struct {
	adminEmail string
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(adminEmail string) *NotificationService {
	return &NotificationService{adminEmail: adminEmail}
}

// NotifyBookingReceived composes the admin notification for a new booking.
func (s *NotificationService) NotifyBookingReceived(ctx context.Context, booking *domain.Booking) error {
	return s.send(ctx, s.composeBookingNotification(booking))
}

// composeBookingNotification builds the admin message for a booking.
func (s *NotificationService) composeBookingNotification(booking *domain.Booking) Notification {
	notificationType := NotificationBookingReceived
	priceLine := fmt.Sprintf("€%d", booking.PriceUnits)
	if booking.IsCustomQuote {
		notificationType = NotificationCustomQuoteAsked
		priceLine = "manual quote required"
	}

	specialRequests := booking.SpecialRequirements
	if specialRequests == "" {
		specialRequests = "No special requests"
	}

	return Notification{
		Type:      notificationType,
		Recipient: s.adminEmail,
		Subject: fmt.Sprintf("New Transfer Booking - %s - %s - %s %s",
			booking.VehicleClass, priceLine, booking.TransferDate, booking.TransferTime),
		Params: map[string]interface{}{
			"order_number":     booking.OrderNumber,
			"from_name":        booking.Name,
			"from_email":       booking.Email,
			"phone":            booking.Phone,
			"pickup_address":   booking.PickupAddress,
			"dropoff_address":  booking.DropoffAddress,
			"date":             booking.TransferDate,
			"time":             booking.TransferTime,
			"passengers":       booking.Passengers,
			"vehicle_type":     string(booking.VehicleClass),
			"total_price":      priceLine,
			"distance_km":      booking.DistanceKm,
			"special_requests": specialRequests,
			"reply_to":         booking.Email,
		},
		CreatedAt: time.Now(),
	}
}

// send delivers a notification (mock transport).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Subject=%s",
		notification.Type, notification.Recipient, notification.Subject)
	return nil
}
