package geo

import (
	"fmt"
	"testing"

	"rideconnect/internal/domain"
)

func TestQueryCache_PutGet(t *testing.T) {
	t.Parallel()

	cache := newQueryCache(10)

	coords := domain.Coordinates{Latitude: 45.65, Longitude: 13.77}
	cache.Put("trieste", coords)

	got, ok := cache.Get("trieste")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != coords {
		t.Errorf("expected %+v, got %+v", coords, got)
	}

	if _, ok := cache.Get("venice"); ok {
		t.Error("expected cache miss for unknown key")
	}
}

func TestQueryCache_FIFOEviction(t *testing.T) {
	t.Parallel()

	cache := newQueryCache(3)

	for i := 0; i < 3; i++ {
		cache.Put(fmt.Sprintf("key-%d", i), domain.Coordinates{Latitude: float64(i)})
	}

	// Inserting a fourth entry evicts the oldest.
	cache.Put("key-3", domain.Coordinates{Latitude: 3})

	if _, ok := cache.Get("key-0"); ok {
		t.Error("expected oldest entry to be evicted")
	}
	for i := 1; i <= 3; i++ {
		if _, ok := cache.Get(fmt.Sprintf("key-%d", i)); !ok {
			t.Errorf("expected key-%d to survive", i)
		}
	}
	if cache.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", cache.Len())
	}
}

func TestQueryCache_OverwriteDoesNotEvict(t *testing.T) {
	t.Parallel()

	cache := newQueryCache(2)

	cache.Put("a", domain.Coordinates{Latitude: 1})
	cache.Put("b", domain.Coordinates{Latitude: 2})
	cache.Put("a", domain.Coordinates{Latitude: 9})

	if cache.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", cache.Len())
	}
	got, ok := cache.Get("a")
	if !ok || got.Latitude != 9 {
		t.Errorf("expected overwritten value 9, got %+v (hit=%v)", got, ok)
	}
	if _, ok := cache.Get("b"); !ok {
		t.Error("expected b to survive an overwrite of a")
	}
}

func TestQueryCache_ZeroCapacityUsesDefault(t *testing.T) {
	t.Parallel()

	cache := newQueryCache(0)

	for i := 0; i < 100; i++ {
		cache.Put(fmt.Sprintf("key-%d", i), domain.Coordinates{})
	}
	if cache.Len() != 100 {
		t.Errorf("expected default capacity of 100 entries, got %d", cache.Len())
	}

	cache.Put("one-more", domain.Coordinates{})
	if cache.Len() != 100 {
		t.Errorf("expected cache to stay at capacity, got %d", cache.Len())
	}
	if _, ok := cache.Get("key-0"); ok {
		t.Error("expected first entry evicted at capacity")
	}
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{"Trieste, Italy", "trieste, italy"},
		{"  Venice  ", "venice"},
		{"LJUBLJANA", "ljubljana"},
	}

	for _, tc := range testCases {
		if got := normalizeQuery(tc.in); got != tc.want {
			t.Errorf("normalizeQuery(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
