package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rideconnect/internal/domain"
	"rideconnect/internal/redis"
	"rideconnect/internal/service"
)

// QuoteHandler handles HTTP requests for fare quotes.
type QuoteHandler struct {
	pricingService *service.PricingService
	quoteStore     redis.QuoteStoreInterface
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(pricingService *service.PricingService, quoteStore redis.QuoteStoreInterface) *QuoteHandler {
	return &QuoteHandler{
		pricingService: pricingService,
		quoteStore:     quoteStore,
	}
}

// EstimateFareRequest is the HTTP request body for a fare quote.
type EstimateFareRequest struct {
	Pickup       string `json:"pickup"`
	Dropoff      string `json:"dropoff"`
	Passengers   int    `json:"passengers"`
	VehicleClass string `json:"vehicle_class,omitempty"` // STANDARD, EXECUTIVE, VAN, MINIBUS
}

// EstimateFareResponse is the HTTP response for a fare quote.
type EstimateFareResponse struct {
	PriceUnits    int     `json:"price_units"`
	Currency      string  `json:"currency"`
	DistanceKm    float64 `json:"distance_km"`
	DurationMin   float64 `json:"duration_min"`
	IsCustomQuote bool    `json:"is_custom_quote"`
	VehicleClass  string  `json:"vehicle_class"`
}

// EstimateFare handles POST /v1/quotes
func (h *QuoteHandler) EstimateFare(c *gin.Context) {
	var req EstimateFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	// Address presence and passenger count are validated at this layer;
	// the pricing core assumes well-formed input.
	if req.Pickup == "" {
		respondError(c, service.ErrInvalidPickupAddress)
		return
	}
	if req.Dropoff == "" {
		respondError(c, service.ErrInvalidDropoffAddress)
		return
	}
	if req.Passengers <= 0 {
		respondError(c, service.ErrInvalidPassengerCount)
		return
	}

	vehicleClass, err := ParseVehicleClass(req.VehicleClass)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()

	if h.quoteStore != nil {
		cached, err := h.quoteStore.GetQuote(ctx, req.Pickup, req.Dropoff, req.Passengers, vehicleClass)
		if err != nil {
			log.Printf("quote cache read failed: %v", err)
		}
		if cached != nil {
			respondJSON(c, http.StatusOK, quoteResponse(*cached, vehicleClass))
			return
		}
	}

	quote := h.pricingService.EstimateFare(ctx, req.Pickup, req.Dropoff, req.Passengers, vehicleClass)

	if h.quoteStore != nil {
		if err := h.quoteStore.SetQuote(ctx, req.Pickup, req.Dropoff, req.Passengers, vehicleClass, quote); err != nil {
			log.Printf("quote cache write failed: %v", err)
		}
	}

	respondJSON(c, http.StatusOK, quoteResponse(quote, vehicleClass))
}

func quoteResponse(quote domain.FareQuote, vehicleClass domain.VehicleClass) EstimateFareResponse {
	return EstimateFareResponse{
		PriceUnits:    quote.PriceUnits,
		Currency:      "EUR",
		DistanceKm:    quote.DistanceKm,
		DurationMin:   quote.DurationMin,
		IsCustomQuote: quote.IsCustomQuote,
		VehicleClass:  string(vehicleClass),
	}
}
