package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"rideconnect/internal/domain"
)

const (
	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	nominatimUserAgent      = "RideConnect-Transfer-Service"
)

// NominatimProvider is the secondary provider: free OpenStreetMap geocoding
// data, point lookup only. Distance must be derived by the caller.
//
// It is driven from live user keystrokes upstream, so a newly issued query
// cancels the previous in-flight request for this provider instance; the
// superseded result is discarded.
type NominatimProvider struct {
	baseURL      string
	countryCodes string
	httpClient   *http.Client
	cache        *queryCache

	mu       sync.Mutex
	cancel   context.CancelFunc
	inFlight *requestToken
}

// requestToken identifies one in-flight request so a finished request only
// clears its own cancel handle.
type requestToken struct{}

// NominatimConfig holds the Nominatim provider configuration.
type NominatimConfig struct {
	BaseURL       string
	CountryCodes  string // comma-separated service-area filter, e.g. "it,si,hr,at"
	Timeout       time.Duration
	CacheCapacity int
}

// NewNominatimProvider creates the secondary provider.
func NewNominatimProvider(cfg NominatimConfig) *NominatimProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NominatimProvider{
		baseURL:      baseURL,
		countryCodes: cfg.CountryCodes,
		httpClient:   &http.Client{Timeout: timeout},
		cache:        newQueryCache(cfg.CacheCapacity),
	}
}

// nominatimResult is the subset of the Nominatim search response we consume.
type nominatimResult struct {
	PlaceID     int64  `json:"place_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves an address to coordinates. The first (most relevant)
// result wins. Successful lookups are cached.
func (p *NominatimProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	key := normalizeQuery(address)
	if coords, ok := p.cache.Get(key); ok {
		return coords, nil
	}

	// Cancel the previous in-flight request; its result must never be applied.
	reqCtx, cancel := context.WithCancel(ctx)
	token := &requestToken{}
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.cancel = cancel
	p.inFlight = token
	p.mu.Unlock()
	defer func() {
		cancel()
		p.mu.Lock()
		if p.inFlight == token {
			p.cancel = nil
			p.inFlight = nil
		}
		p.mu.Unlock()
	}()

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "8")
	params.Set("addressdetails", "1")
	if p.countryCodes != "" {
		params.Set("countrycodes", p.countryCodes)
	}
	params.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, p.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("failed to build nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return domain.Coordinates{}, context.Canceled
		case errors.Is(err, context.DeadlineExceeded):
			return domain.Coordinates{}, ErrTimeout
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return domain.Coordinates{}, ErrTimeout
		}
		return domain.Coordinates{}, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.Coordinates{}, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return domain.Coordinates{}, fmt.Errorf("nominatim http status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("failed to parse nominatim response: %w", err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	coords := domain.Coordinates{Latitude: lat, Longitude: lon}
	p.cache.Put(key, coords)
	return coords, nil
}
