package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

// BookingRepo persists the booking sequence under BookingsKey.
type BookingRepo interface {
	// List returns the stored bookings, most recently created first.
	// Absent or malformed data yields an empty, non-nil slice and no error.
	List(ctx context.Context) ([]domain.Booking, error)

	// Save replaces the stored sequence. Callers keep it most-recent-first.
	Save(ctx context.Context, bookings []domain.Booking) error
}

// kvBookingRepo encodes bookings as a JSON array of objects.
type kvBookingRepo struct {
	kv  KVStore
	log *slog.Logger
}

// NewBookingRepo constructs a BookingRepo on top of kv.
func NewBookingRepo(kv KVStore, log *slog.Logger) BookingRepo {
	if log == nil {
		log = slog.Default()
	}
	return &kvBookingRepo{kv: kv, log: log}
}

func (r *kvBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	raw, ok, err := r.kv.Get(ctx, BookingsKey)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.List: %w", err)
	}
	if !ok {
		return []domain.Booking{}, nil
	}

	bookings, err := decodeBookings(raw)
	if err != nil {
		r.log.WarnContext(ctx, "discarding malformed bookings", "key", BookingsKey, "error", err)
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

func (r *kvBookingRepo) Save(ctx context.Context, bookings []domain.Booking) error {
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("repo.BookingRepo.Save: %w", err)
	}
	if err := r.kv.Set(ctx, BookingsKey, raw); err != nil {
		return fmt.Errorf("repo.BookingRepo.Save: %w", err)
	}
	return nil
}

// decodeBookings parses the stored array and rejects records that could not
// have been written by this application: a missing id or an unknown status
// means the whole document is untrustworthy.
func decodeBookings(raw []byte) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, err
	}
	for i, b := range bookings {
		if b.ID == "" {
			return nil, fmt.Errorf("booking %d: %w", i, errMissingBookingID)
		}
		if !b.Status.Valid() {
			return nil, fmt.Errorf("booking %q: status %q: %w", b.ID, b.Status, errUnknownStatus)
		}
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

var (
	errMissingBookingID = errors.New("missing id")
	errUnknownStatus    = errors.New("unknown status")
)
