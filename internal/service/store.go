// Package service contains the business logic for the Ventureline backend.
// CatalogStore is the single component the API and CLI talk to: it answers
// catalog queries and owns the favorites and bookings collections.
// No storage encoding lives here; the store depends on repo interfaces.
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/ventureline/backend/internal/catalog"
	"github.com/pkordes/ventureline/backend/internal/repo"
)

// DefaultBookingLatency is the simulated processing time of CreateBooking.
const DefaultBookingLatency = 800 * time.Millisecond

// CatalogStore implements the catalog, favorites and bookings operations.
type CatalogStore struct {
	catalog  catalog.Catalog
	byID     map[string]int // campsite id -> index in catalog.Campsites
	favs     repo.FavoriteRepo
	bookings repo.BookingRepo

	// mu serialises read-modify-write cycles on the persisted collections.
	mu sync.Mutex

	latency time.Duration
	now     func() time.Time
	newID   func() string
}

// Option customises a CatalogStore.
type Option func(*CatalogStore)

// WithBookingLatency overrides DefaultBookingLatency. Zero disables the wait.
func WithBookingLatency(d time.Duration) Option {
	return func(s *CatalogStore) { s.latency = d }
}

// WithClock replaces time.Now for booking timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *CatalogStore) { s.now = now }
}

// WithIDGenerator replaces the UUID booking id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *CatalogStore) { s.newID = gen }
}

// NewCatalogStore constructs a CatalogStore over a loaded catalog and the two
// collection repos.
func NewCatalogStore(c catalog.Catalog, favs repo.FavoriteRepo, bookings repo.BookingRepo, opts ...Option) *CatalogStore {
	s := &CatalogStore{
		catalog:  c,
		byID:     make(map[string]int, len(c.Campsites)),
		favs:     favs,
		bookings: bookings,
		latency:  DefaultBookingLatency,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for i, site := range c.Campsites {
		s.byID[site.ID] = i
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
