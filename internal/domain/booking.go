package domain

import "time"

// BookingStatus is the lifecycle state of a Booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	// BookingCancelled is part of the persisted taxonomy; no operation sets it yet.
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

// Booking is a confirmed reservation.
// The campsite fields are a snapshot copied at booking time so old bookings
// stay displayable even if the catalog changes. Only Status may change after
// creation.
//
// The JSON tags are the persisted storage layout and must not change.
// The YAML tags mirror them for CLI output.
type Booking struct {
	ID               string        `json:"id" yaml:"id"`
	CampsiteID       string        `json:"campsiteId" yaml:"campsiteId"`
	CampsiteName     string        `json:"campsiteName" yaml:"campsiteName"`
	CampsiteImage    string        `json:"campsiteImage" yaml:"campsiteImage"`
	CampsiteLocation string        `json:"campsiteLocation" yaml:"campsiteLocation"`
	Dates            string        `json:"dates" yaml:"dates"`
	Guests           string        `json:"guests" yaml:"guests"`
	TotalPrice       int           `json:"totalPrice" yaml:"totalPrice"`
	Status           BookingStatus `json:"status" yaml:"status"`
	BookedAt         time.Time     `json:"bookedAt" yaml:"bookedAt"`
}

// BookingRequest carries the caller-supplied fields of a new booking.
// None of them are checked against the catalog.
type BookingRequest struct {
	CampsiteID       string
	CampsiteName     string
	CampsiteImage    string
	CampsiteLocation string
	Dates            string
	Guests           string
	TotalPrice       int
}
