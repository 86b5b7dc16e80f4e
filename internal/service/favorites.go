package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

// GetFavorites returns the favorite campsite ids in the order they were added.
// Nothing is written when no favorites have been stored yet.
func (s *CatalogStore) GetFavorites(ctx context.Context) ([]string, error) {
	ids, err := s.favs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogStore.GetFavorites: %w", err)
	}
	return ids, nil
}

// IsFavorite reports whether id is currently a favorite.
func (s *CatalogStore) IsFavorite(ctx context.Context, id string) (bool, error) {
	ids, err := s.favs.List(ctx)
	if err != nil {
		return false, fmt.Errorf("service.CatalogStore.IsFavorite: %w", err)
	}
	return slices.Contains(ids, id), nil
}

// ToggleFavorite flips the membership of id and persists the full set before
// returning. The result is true when id is now a favorite.
// id is not checked against the catalog.
func (s *CatalogStore) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.favs.List(ctx)
	if err != nil {
		return false, fmt.Errorf("service.CatalogStore.ToggleFavorite: %w", err)
	}

	var now bool
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, id)
		now = true
	}

	if err := s.favs.Save(ctx, ids); err != nil {
		return false, fmt.Errorf("service.CatalogStore.ToggleFavorite: %w", err)
	}
	return now, nil
}

// FavoriteCampsites returns the favorited campsites in catalog order.
// Favorite ids that match no campsite are skipped.
func (s *CatalogStore) FavoriteCampsites(ctx context.Context) ([]domain.Campsite, error) {
	ids, err := s.favs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogStore.FavoriteCampsites: %w", err)
	}

	out := []domain.Campsite{}
	for _, site := range s.catalog.Campsites {
		if slices.Contains(ids, site.ID) {
			out = append(out, cloneCampsite(site))
		}
	}
	return out, nil
}
