package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

// GetBookings returns all bookings, most recently created first.
func (s *CatalogStore) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogStore.GetBookings: %w", err)
	}
	return bookings, nil
}

// CreateBooking confirms a booking and stores it ahead of all earlier ones.
//
// The call first waits the configured booking latency to mimic payment
// processing. Cancelling ctx during the wait returns ctx.Err() and nothing is
// stored. The request is stored as given: there is no availability check and
// no duplicate detection.
func (s *CatalogStore) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.Booking{}, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.bookings.List(ctx)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.CatalogStore.CreateBooking: %w", err)
	}

	b := domain.Booking{
		ID:               s.uniqueID(existing),
		CampsiteID:       req.CampsiteID,
		CampsiteName:     req.CampsiteName,
		CampsiteImage:    req.CampsiteImage,
		CampsiteLocation: req.CampsiteLocation,
		Dates:            req.Dates,
		Guests:           req.Guests,
		TotalPrice:       req.TotalPrice,
		Status:           domain.BookingConfirmed,
		BookedAt:         s.now().UTC(),
	}

	updated := make([]domain.Booking, 0, len(existing)+1)
	updated = append(updated, b)
	updated = append(updated, existing...)

	if err := s.bookings.Save(ctx, updated); err != nil {
		return domain.Booking{}, fmt.Errorf("service.CatalogStore.CreateBooking: %w", err)
	}
	return b, nil
}

// uniqueID draws ids until one is unused. With UUIDs the loop body runs once
// in practice; the check only matters for injected generators.
func (s *CatalogStore) uniqueID(existing []domain.Booking) string {
	taken := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		taken[b.ID] = struct{}{}
	}
	for {
		id := s.newID()
		if _, dup := taken[id]; !dup && id != "" {
			return id
		}
	}
}
