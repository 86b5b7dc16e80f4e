package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

// ExportBookings returns one row per stored booking, most recent first,
// joined against the live catalog.
func (s *CatalogStore) ExportBookings(ctx context.Context) ([]domain.BookingExportRow, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogStore.ExportBookings: %w", err)
	}

	rows := make([]domain.BookingExportRow, 0, len(bookings))
	for _, b := range bookings {
		row := domain.BookingExportRow{
			BookingID:        b.ID,
			Status:           string(b.Status),
			BookedAt:         b.BookedAt.UTC().Format(time.RFC3339),
			CampsiteID:       b.CampsiteID,
			CampsiteName:     b.CampsiteName,
			CampsiteLocation: b.CampsiteLocation,
			Dates:            b.Dates,
			Guests:           b.Guests,
			TotalPrice:       int64(b.TotalPrice),
		}
		if site, ok := s.GetCampsiteByID(b.CampsiteID); ok {
			row.InCatalog = true
			row.NightlyPrice = int64(site.Price)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
