package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/ventureline/backend/internal/catalog"
	"github.com/pkordes/ventureline/backend/internal/domain"
	"github.com/pkordes/ventureline/backend/internal/repo"
	"github.com/pkordes/ventureline/backend/internal/service"
)

// mockFavoriteRepo is a hand-written test double for repo.FavoriteRepo.
// Each method is a function field; set only the ones your test needs.
type mockFavoriteRepo struct {
	list func(ctx context.Context) ([]string, error)
	save func(ctx context.Context, ids []string) error
}

func (m *mockFavoriteRepo) List(ctx context.Context) ([]string, error) { return m.list(ctx) }
func (m *mockFavoriteRepo) Save(ctx context.Context, ids []string) error {
	return m.save(ctx, ids)
}

// mockBookingRepo is a hand-written test double for repo.BookingRepo.
type mockBookingRepo struct {
	list func(ctx context.Context) ([]domain.Booking, error)
	save func(ctx context.Context, bookings []domain.Booking) error
}

func (m *mockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) { return m.list(ctx) }
func (m *mockBookingRepo) Save(ctx context.Context, b []domain.Booking) error {
	return m.save(ctx, b)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.FavoriteRepo = (*mockFavoriteRepo)(nil)
	_ repo.BookingRepo  = (*mockBookingRepo)(nil)
)

// ---- helpers ---------------------------------------------------------------

func seedCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

// newMemoryStore wires a CatalogStore over in-memory storage with no booking
// latency. The KVStore is returned so tests can inspect the stored documents.
func newMemoryStore(t *testing.T, opts ...service.Option) (*service.CatalogStore, repo.KVStore) {
	t.Helper()
	kv := repo.NewMemoryKVStore()
	opts = append([]service.Option{service.WithBookingLatency(0)}, opts...)
	s := service.NewCatalogStore(
		seedCatalog(t),
		repo.NewFavoriteRepo(kv, nil),
		repo.NewBookingRepo(kv, nil),
		opts...,
	)
	return s, kv
}

// fixedClock returns a clock that advances one minute per call, starting at
// start, so consecutive bookings get distinct, ordered timestamps.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

func campsiteIDs(sites []domain.Campsite) []string {
	ids := make([]string, len(sites))
	for i, s := range sites {
		ids[i] = s.ID
	}
	return ids
}
