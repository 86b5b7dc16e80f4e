package domain

// BookingExportRow is a single row in the bookings export.
// It is a flat view of one booking joined against the current catalog:
// NightlyPrice and InCatalog describe the campsite as it is today, while the
// remaining fields are the snapshot taken when the booking was made.
type BookingExportRow struct {
	BookingID        string `json:"booking_id" parquet:"booking_id"`
	Status           string `json:"status" parquet:"status"`
	BookedAt         string `json:"booked_at" parquet:"booked_at"` // RFC 3339, UTC
	CampsiteID       string `json:"campsite_id" parquet:"campsite_id"`
	CampsiteName     string `json:"campsite_name" parquet:"campsite_name"`
	CampsiteLocation string `json:"campsite_location" parquet:"campsite_location"`
	Dates            string `json:"dates" parquet:"dates"`
	Guests           string `json:"guests" parquet:"guests"`
	TotalPrice       int64  `json:"total_price" parquet:"total_price"`

	// Catalog fields; zero values when the campsite is no longer listed.
	InCatalog    bool  `json:"in_catalog" parquet:"in_catalog"`
	NightlyPrice int64 `json:"nightly_price" parquet:"nightly_price"`
}
