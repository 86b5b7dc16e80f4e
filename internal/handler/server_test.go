package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/ventureline/backend/internal/domain"
	"github.com/pkordes/ventureline/backend/internal/handler"
	"github.com/pkordes/ventureline/backend/internal/handler/gen"
)

// ---- mocks -----------------------------------------------------------------
// Set only the method fields your test needs.

type mockCatalogServicer struct {
	destinations func() []domain.Destination
	amenities    func() []domain.Amenity
	campsites    func(query string) []domain.Campsite
	campsiteByID func(id string) (domain.Campsite, bool)
}

func (m *mockCatalogServicer) GetDestinations() []domain.Destination { return m.destinations() }
func (m *mockCatalogServicer) GetAmenities() []domain.Amenity        { return m.amenities() }
func (m *mockCatalogServicer) GetCampsites(q string) []domain.Campsite {
	return m.campsites(q)
}
func (m *mockCatalogServicer) GetCampsiteByID(id string) (domain.Campsite, bool) {
	return m.campsiteByID(id)
}

type mockFavoriteServicer struct {
	list      func(ctx context.Context) ([]string, error)
	toggle    func(ctx context.Context, id string) (bool, error)
	campsites func(ctx context.Context) ([]domain.Campsite, error)
}

func (m *mockFavoriteServicer) GetFavorites(ctx context.Context) ([]string, error) {
	return m.list(ctx)
}
func (m *mockFavoriteServicer) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	return m.toggle(ctx, id)
}
func (m *mockFavoriteServicer) FavoriteCampsites(ctx context.Context) ([]domain.Campsite, error) {
	return m.campsites(ctx)
}

type mockBookingServicer struct {
	list   func(ctx context.Context) ([]domain.Booking, error)
	create func(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)
	export func(ctx context.Context) ([]domain.BookingExportRow, error)
}

func (m *mockBookingServicer) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	return m.list(ctx)
}
func (m *mockBookingServicer) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	return m.create(ctx, req)
}
func (m *mockBookingServicer) ExportBookings(ctx context.Context) ([]domain.BookingExportRow, error) {
	return m.export(ctx)
}

// compile-time checks
var (
	_ handler.CatalogServicer  = (*mockCatalogServicer)(nil)
	_ handler.FavoriteServicer = (*mockFavoriteServicer)(nil)
	_ handler.BookingServicer  = (*mockBookingServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server into the generated chi router the same way
// main.go does. Nil servicers are fine for endpoints the test doesn't hit.
func newHTTPHandler(c handler.CatalogServicer, f handler.FavoriteServicer, b handler.BookingServicer) http.Handler {
	srv := handler.NewServer(c, f, b)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

func campsiteFixture() domain.Campsite {
	return domain.Campsite{
		ID:          "s1",
		Name:        "Lakeview Cabins",
		Image:       "https://example.com/s1.jpg",
		Location:    "Lake Tahoe, CA",
		Rating:      4.8,
		Reviews:     124,
		Price:       85,
		Tags:        []string{"Lake", "Cabins"},
		Description: "Rustic cabins on the water.",
		Amenities:   []string{"Wifi", "Showers"},
		IsEco:       true,
		Coordinates: &domain.Coordinates{Top: "35%", Left: "42%"},
	}
}

// emptyCatalog answers every lookup with "absent".
func emptyCatalog() *mockCatalogServicer {
	return &mockCatalogServicer{
		campsiteByID: func(string) (domain.Campsite, bool) { return domain.Campsite{}, false },
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
