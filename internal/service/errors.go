package service

import "errors"

var (
	// ErrUnresolvedAddress is returned when both providers failed to
	// resolve one side of a trip. The resolver absorbs it internally.
	ErrUnresolvedAddress = errors.New("address could not be resolved")

	// ErrInvalidPickupAddress is returned when the pickup address is empty.
	ErrInvalidPickupAddress = errors.New("invalid pickup address")

	// ErrInvalidDropoffAddress is returned when the dropoff address is empty.
	ErrInvalidDropoffAddress = errors.New("invalid dropoff address")

	// ErrInvalidPassengerCount is returned when the passenger count is not positive.
	ErrInvalidPassengerCount = errors.New("invalid passenger count")

	// ErrInvalidBookingID is returned when a booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidOrderNumber is returned when an order number is empty.
	ErrInvalidOrderNumber = errors.New("invalid order number")

	// ErrInvalidBookingStatus is returned when a status value is not part of
	// the booking lifecycle.
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// ErrInvalidContact is returned when the booking contact details are incomplete.
	ErrInvalidContact = errors.New("invalid contact details")

	// ErrInvalidTransferDate is returned when the transfer date is missing.
	ErrInvalidTransferDate = errors.New("invalid transfer date")
)
