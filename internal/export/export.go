// Package export encodes booking export rows as JSON, CSV or Parquet.
// The HTTP handler and the CLI share these encoders so both surfaces produce
// byte-identical files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

// Format names an export encoding.
type Format string

const (
	JSON    Format = "json"
	CSV     Format = "csv"
	Parquet Format = "parquet"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, CSV, Parquet:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q (want json, csv or parquet)", domain.ErrValidation, s)
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv"
	case Parquet:
		return "application/vnd.apache.parquet"
	default:
		return "application/json"
	}
}

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"booking_id", "status", "booked_at",
	"campsite_id", "campsite_name", "campsite_location",
	"dates", "guests", "total_price",
	"in_catalog", "nightly_price",
}

// Write encodes rows to w in format f.
func Write(w io.Writer, f Format, rows []domain.BookingExportRow) error {
	switch f {
	case CSV:
		return WriteCSV(w, rows)
	case Parquet:
		return WriteParquet(w, rows)
	default:
		return WriteJSON(w, rows)
	}
}

// WriteJSON encodes rows as a JSON array. An empty export is "[]", not null.
func WriteJSON(w io.Writer, rows []domain.BookingExportRow) error {
	if rows == nil {
		rows = []domain.BookingExportRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("export.WriteJSON: %w", err)
	}
	return nil
}

// WriteCSV writes a header row followed by one record per booking.
func WriteCSV(w io.Writer, rows []domain.BookingExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(csvRecord(r)); err != nil {
			return fmt.Errorf("export.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

// WriteParquet writes rows as a single Parquet file.
func WriteParquet(w io.Writer, rows []domain.BookingExportRow) error {
	pw := parquet.NewGenericWriter[domain.BookingExportRow](w)
	if _, err := pw.Write(rows); err != nil {
		return fmt.Errorf("export.WriteParquet: write: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("export.WriteParquet: close: %w", err)
	}
	return nil
}

func csvRecord(r domain.BookingExportRow) []string {
	return []string{
		r.BookingID,
		r.Status,
		r.BookedAt,
		r.CampsiteID,
		r.CampsiteName,
		r.CampsiteLocation,
		r.Dates,
		r.Guests,
		strconv.FormatInt(r.TotalPrice, 10),
		strconv.FormatBool(r.InCatalog),
		strconv.FormatInt(r.NightlyPrice, 10),
	}
}
