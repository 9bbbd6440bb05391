package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rideconnect/internal/domain"
	"rideconnect/internal/repository"
	"rideconnect/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidPickupAddress),
		errors.Is(err, service.ErrInvalidDropoffAddress),
		errors.Is(err, service.ErrInvalidPassengerCount),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidOrderNumber),
		errors.Is(err, service.ErrInvalidBookingStatus),
		errors.Is(err, service.ErrInvalidContact),
		errors.Is(err, service.ErrInvalidTransferDate):
		return http.StatusBadRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

// ParseVehicleClass validates a vehicle class string. An empty string
// defaults to Standard.
func ParseVehicleClass(raw string) (domain.VehicleClass, error) {
	switch domain.VehicleClass(strings.ToUpper(raw)) {
	case domain.VehicleClassStandard, domain.VehicleClassExecutive,
		domain.VehicleClassVan, domain.VehicleClassMinibus:
		return domain.VehicleClass(strings.ToUpper(raw)), nil
	case "":
		return domain.VehicleClassStandard, nil
	default:
		return "", fmt.Errorf("invalid vehicle class %q", raw)
	}
}
