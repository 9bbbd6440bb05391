package tests

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"rideconnect/internal/domain"
	"rideconnect/internal/geo"
	"rideconnect/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

var _ repository.BookingRepository = (*MockBookingRepository)(nil)

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.OrderNumber == orderNumber {
			copy := *b
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = status
	return nil
}

// GetBooking returns the booking by ID (for test assertions).
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// CountBookings returns the number of stored bookings.
func (m *MockBookingRepository) CountBookings() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// ──────────────────────────────────────────────
// MOCK ROUTE PROVIDER
// ──────────────────────────────────────────────

// MockRouteProvider is a mock routing backend.
type MockRouteProvider struct {
	mu sync.Mutex

	// Control behavior
	IsReady bool
	Result  domain.DistanceResult
	Err     error

	// Counters
	RouteCallCount int32
}

// NewMockRouteProvider creates a new mock route provider.
func NewMockRouteProvider() *MockRouteProvider {
	return &MockRouteProvider{IsReady: true}
}

func (m *MockRouteProvider) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.IsReady
}

func (m *MockRouteProvider) RouteDistance(ctx context.Context, origin, destination string) (domain.DistanceResult, error) {
	atomic.AddInt32(&m.RouteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return domain.DistanceResult{}, m.Err
	}
	return m.Result, nil
}

// SetResult configures the provider response.
func (m *MockRouteProvider) SetResult(result domain.DistanceResult, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Result = result
	m.Err = err
}

// ──────────────────────────────────────────────
// MOCK GEOCODER
// ──────────────────────────────────────────────

// MockGeocoder is a mock point-geocoding backend.
type MockGeocoder struct {
	mu     sync.Mutex
	coords map[string]domain.Coordinates

	// Error injection
	Err error

	// Counters
	GeocodeCallCount int32
}

// NewMockGeocoder creates a new mock geocoder.
func NewMockGeocoder() *MockGeocoder {
	return &MockGeocoder{
		coords: make(map[string]domain.Coordinates),
	}
}

var _ geo.Geocoder = (*MockGeocoder)(nil)

// AddAddress registers coordinates for an address.
func (m *MockGeocoder) AddAddress(address string, coords domain.Coordinates) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coords[address] = coords
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	atomic.AddInt32(&m.GeocodeCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return domain.Coordinates{}, m.Err
	}
	coords, ok := m.coords[address]
	if !ok {
		return domain.Coordinates{}, geo.ErrNotFound
	}
	return coords, nil
}

// ──────────────────────────────────────────────
// HELPER ERRORS
// ──────────────────────────────────────────────

var (
	ErrMockDBConstraint = errors.New("mock: unique constraint violation")
	ErrMockTimeout      = errors.New("mock: operation timeout")
)
