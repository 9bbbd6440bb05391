package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rideconnect/internal/domain"
	"rideconnect/internal/service"
)

// BookingHandler handles HTTP requests for transfer bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// SubmitBookingRequest is the HTTP request body for submitting a booking.
type SubmitBookingRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	Pickup              string `json:"pickup"`
	Dropoff             string `json:"dropoff"`
	Date                string `json:"date"`
	Time                string `json:"time,omitempty"`
	Passengers          int    `json:"passengers"`
	VehicleClass        string `json:"vehicle_class,omitempty"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

// BookingResponse is the HTTP representation of a booking.
type BookingResponse struct {
	ID                  string  `json:"id"`
	OrderNumber         string  `json:"order_number"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone,omitempty"`
	Pickup              string  `json:"pickup"`
	Dropoff             string  `json:"dropoff"`
	Date                string  `json:"date"`
	Time                string  `json:"time,omitempty"`
	Passengers          int     `json:"passengers"`
	VehicleClass        string  `json:"vehicle_class"`
	PriceUnits          int     `json:"price_units"`
	DistanceKm          float64 `json:"distance_km"`
	DurationMin         float64 `json:"duration_min"`
	IsCustomQuote       bool    `json:"is_custom_quote"`
	SpecialRequirements string  `json:"special_requirements,omitempty"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"created_at"`
}

// Submit handles POST /v1/bookings
func (h *BookingHandler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	vehicleClass, err := ParseVehicleClass(req.VehicleClass)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), service.SubmitBookingRequest{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		PickupAddress:       req.Pickup,
		DropoffAddress:      req.Dropoff,
		TransferDate:        req.Date,
		TransferTime:        req.Time,
		Passengers:          req.Passengers,
		VehicleClass:        vehicleClass,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, bookingResponse(booking))
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, bookingResponse(booking))
}

// GetByOrderNumber handles GET /v1/orders/:orderNumber
func (h *BookingHandler) GetByOrderNumber(c *gin.Context) {
	booking, err := h.bookingService.GetBookingByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, bookingResponse(booking))
}

// UpdateStatusRequest is the HTTP request body for a booking status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /v1/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	id := c.Param("id")
	status := domain.BookingStatus(strings.ToUpper(req.Status))

	if err := h.bookingService.UpdateStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, err)
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, bookingResponse(booking))
}

// GetAll handles GET /v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, bookingResponse(b))
	}

	c.JSON(http.StatusOK, response)
}

func bookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                  b.ID,
		OrderNumber:         b.OrderNumber,
		Name:                b.Name,
		Email:               b.Email,
		Phone:               b.Phone,
		Pickup:              b.PickupAddress,
		Dropoff:             b.DropoffAddress,
		Date:                b.TransferDate,
		Time:                b.TransferTime,
		Passengers:          b.Passengers,
		VehicleClass:        string(b.VehicleClass),
		PriceUnits:          b.PriceUnits,
		DistanceKm:          b.DistanceKm,
		DurationMin:         b.DurationMin,
		IsCustomQuote:       b.IsCustomQuote,
		SpecialRequirements: b.SpecialRequirements,
		Status:              string(b.Status),
		CreatedAt:           b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
