// Package handler implements the HTTP handlers for the Ventureline API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (catalog.go, favorite.go, booking.go,
// export.go) but share the same Server struct.
package handler

import (
	"context"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

// CatalogServicer is the read-only catalog surface the handlers depend on.
type CatalogServicer interface {
	GetDestinations() []domain.Destination
	GetAmenities() []domain.Amenity
	GetCampsites(query string) []domain.Campsite
	GetCampsiteByID(id string) (domain.Campsite, bool)
}

// FavoriteServicer defines the favorites operations.
type FavoriteServicer interface {
	GetFavorites(ctx context.Context) ([]string, error)
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	FavoriteCampsites(ctx context.Context) ([]domain.Campsite, error)
}

// BookingServicer defines the booking operations, including the export view.
type BookingServicer interface {
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)
	ExportBookings(ctx context.Context) ([]domain.BookingExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandler(server, nil).
type Server struct {
	catalog   CatalogServicer
	favorites FavoriteServicer
	bookings  BookingServicer
}

// NewServer constructs the Server with all its dependencies.
// In production all three are the same *service.CatalogStore.
func NewServer(catalog CatalogServicer, favorites FavoriteServicer, bookings BookingServicer) *Server {
	return &Server{catalog: catalog, favorites: favorites, bookings: bookings}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}
