package domain

import "time"

// BookingStatus represents the current status of a transfer booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a submitted transfer booking.
type Booking struct {
	ID                  string
	OrderNumber         string
	Name                string
	Email               string
	Phone               string
	PickupAddress       string
	DropoffAddress      string
	TransferDate        string // YYYY-MM-DD as entered by the customer
	TransferTime        string // HH:MM as entered by the customer
	Passengers          int
	VehicleClass        VehicleClass
	PriceUnits          int
	DistanceKm          float64
	DurationMin         float64
	IsCustomQuote       bool
	SpecialRequirements string
	Status              BookingStatus
	CreatedAt           time.Time
}
