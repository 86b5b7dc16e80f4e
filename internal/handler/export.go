package handler

import (
	"bytes"
	"context"

	"github.com/pkordes/ventureline/backend/internal/domain"
	"github.com/pkordes/ventureline/backend/internal/export"
	"github.com/pkordes/ventureline/backend/internal/handler/gen"
)

// ExportBookings handles GET /bookings/export.
// Use ?format=csv to receive CSV; default is JSON. Parquet is CLI-only.
func (s *Server) ExportBookings(ctx context.Context, req gen.ExportBookingsRequestObject) (gen.ExportBookingsResponseObject, error) {
	rows, err := s.bookings.ExportBookings(ctx)
	if err != nil {
		return nil, err
	}

	if req.Params.Format != nil && *req.Params.Format == gen.Csv {
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, rows); err != nil {
			return nil, err
		}
		return gen.ExportBookings200TextcsvResponse{Body: &buf, ContentLength: int64(buf.Len())}, nil
	}

	out := make(gen.ExportBookings200JSONResponse, len(rows))
	for i, r := range rows {
		out[i] = exportRowToResponse(r)
	}
	return out, nil
}

func exportRowToResponse(r domain.BookingExportRow) gen.ExportRow {
	return gen.ExportRow{
		BookingId:        r.BookingID,
		Status:           r.Status,
		BookedAt:         r.BookedAt,
		CampsiteId:       r.CampsiteID,
		CampsiteName:     r.CampsiteName,
		CampsiteLocation: r.CampsiteLocation,
		Dates:            r.Dates,
		Guests:           r.Guests,
		TotalPrice:       r.TotalPrice,
		InCatalog:        r.InCatalog,
		NightlyPrice:     r.NightlyPrice,
	}
}
