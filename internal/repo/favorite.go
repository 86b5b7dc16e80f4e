package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// FavoriteRepo persists the favorite campsite ids under FavoritesKey.
type FavoriteRepo interface {
	// List returns the stored ids in insertion order, with duplicates removed.
	// Absent or malformed data yields an empty, non-nil slice and no error.
	List(ctx context.Context) ([]string, error)

	// Save replaces the stored ids.
	Save(ctx context.Context, ids []string) error
}

// kvFavoriteRepo encodes favorites as a JSON array of strings.
type kvFavoriteRepo struct {
	kv  KVStore
	log *slog.Logger
}

// NewFavoriteRepo constructs a FavoriteRepo on top of kv.
// Corrupt stored data is reported on log at WARN level.
func NewFavoriteRepo(kv KVStore, log *slog.Logger) FavoriteRepo {
	if log == nil {
		log = slog.Default()
	}
	return &kvFavoriteRepo{kv: kv, log: log}
}

func (r *kvFavoriteRepo) List(ctx context.Context) ([]string, error) {
	raw, ok, err := r.kv.Get(ctx, FavoritesKey)
	if err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.List: %w", err)
	}
	if !ok {
		return []string{}, nil
	}

	var stored []string
	if err := json.Unmarshal(raw, &stored); err != nil {
		r.log.WarnContext(ctx, "discarding malformed favorites", "key", FavoritesKey, "error", err)
		return []string{}, nil
	}

	// Set semantics: keep the first occurrence of each id.
	ids := make([]string, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	for _, id := range stored {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *kvFavoriteRepo) Save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{} // encode as [] rather than null
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("repo.FavoriteRepo.Save: %w", err)
	}
	if err := r.kv.Set(ctx, FavoritesKey, raw); err != nil {
		return fmt.Errorf("repo.FavoriteRepo.Save: %w", err)
	}
	return nil
}
