package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newNominatimTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestNominatimProvider_Geocode(t *testing.T) {
	t.Parallel()

	server := newNominatimTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != nominatimUserAgent {
			t.Errorf("expected User-Agent %q, got %q", nominatimUserAgent, got)
		}
		if got := r.URL.Query().Get("q"); got != "Trieste, Italy" {
			t.Errorf("expected query %q, got %q", "Trieste, Italy", got)
		}
		if got := r.URL.Query().Get("countrycodes"); got != "it,si,hr,at" {
			t.Errorf("expected countrycodes filter, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"place_id":1,"lat":"45.6495","lon":"13.7768","display_name":"Trieste"}]`))
	})

	provider := NewNominatimProvider(NominatimConfig{
		BaseURL:      server.URL,
		CountryCodes: "it,si,hr,at",
	})

	coords, err := provider.Geocode(context.Background(), "Trieste, Italy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Latitude != 45.6495 || coords.Longitude != 13.7768 {
		t.Errorf("unexpected coordinates: %+v", coords)
	}
}

func TestNominatimProvider_FirstResultWins(t *testing.T) {
	t.Parallel()

	server := newNominatimTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"place_id":1,"lat":"46.05","lon":"14.51","display_name":"Ljubljana"},
			{"place_id":2,"lat":"0","lon":"0","display_name":"wrong"}
		]`))
	})

	provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL})

	coords, err := provider.Geocode(context.Background(), "Ljubljana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Latitude != 46.05 {
		t.Errorf("expected first result, got %+v", coords)
	}
}

func TestNominatimProvider_NoResults(t *testing.T) {
	t.Parallel()

	server := newNominatimTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL})

	_, err := provider.Geocode(context.Background(), "nonexistent place xyz")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNominatimProvider_RateLimited(t *testing.T) {
	t.Parallel()

	server := newNominatimTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL})

	_, err := provider.Geocode(context.Background(), "Trieste")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestNominatimProvider_CachesSuccessfulLookups(t *testing.T) {
	t.Parallel()

	var requests int32
	server := newNominatimTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(`[{"place_id":1,"lat":"45.65","lon":"13.77","display_name":"Trieste"}]`))
	})

	provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL})

	if _, err := provider.Geocode(context.Background(), "Trieste, Italy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Same query, different casing and spacing, must hit the cache.
	if _, err := provider.Geocode(context.Background(), "  TRIESTE, Italy "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := atomic.LoadInt32(&requests); got != 1 {
		t.Errorf("expected 1 upstream request, got %d", got)
	}
}

func TestNominatimProvider_FailuresAreNotCached(t *testing.T) {
	t.Parallel()

	var requests int32
	server := newNominatimTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[{"place_id":1,"lat":"45.65","lon":"13.77","display_name":"Trieste"}]`))
	})

	provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL})

	if _, err := provider.Geocode(context.Background(), "Trieste"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	coords, err := provider.Geocode(context.Background(), "Trieste")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if coords.Latitude != 45.65 {
		t.Errorf("unexpected coordinates: %+v", coords)
	}
}

func TestNominatimProvider_ReissueCancelsInFlightRequest(t *testing.T) {
	t.Parallel()

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	server := newNominatimTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Trieste, Italy" {
			close(firstStarted)
			// Hold the first request open until it is cancelled.
			select {
			case <-r.Context().Done():
				return
			case <-release:
			}
		}
		w.Write([]byte(`[{"place_id":1,"lat":"45.44","lon":"12.32","display_name":"Venice"}]`))
	})

	provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL})

	firstResult := make(chan error, 1)
	go func() {
		_, err := provider.Geocode(context.Background(), "Trieste, Italy")
		firstResult <- err
	}()

	<-firstStarted

	// Reissuing supersedes the in-flight request.
	coords, err := provider.Geocode(context.Background(), "Venice, Italy")
	if err != nil {
		t.Fatalf("unexpected error on the reissued query: %v", err)
	}
	if coords.Latitude != 45.44 {
		t.Errorf("unexpected coordinates for the reissued query: %+v", coords)
	}

	if err := <-firstResult; !errors.Is(err, context.Canceled) {
		t.Errorf("expected superseded request to return context.Canceled, got %v", err)
	}

	// The superseded result must never have been applied.
	if _, ok := provider.cache.Get(normalizeQuery("Trieste, Italy")); ok {
		t.Error("expected no cache entry for the cancelled query")
	}
}

func TestNominatimProvider_InvalidCoordinatePayload(t *testing.T) {
	t.Parallel()

	server := newNominatimTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"place_id":1,"lat":"not-a-number","lon":"13.77","display_name":"x"}]`))
	})

	provider := NewNominatimProvider(NominatimConfig{BaseURL: server.URL})

	if _, err := provider.Geocode(context.Background(), "Trieste"); err == nil {
		t.Error("expected error for malformed latitude")
	}
}
