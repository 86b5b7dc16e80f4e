package handler

import (
	"context"

	"github.com/pkordes/ventureline/backend/internal/handler/gen"
)

// ListFavorites handles GET /favorites.
func (s *Server) ListFavorites(ctx context.Context, _ gen.ListFavoritesRequestObject) (gen.ListFavoritesResponseObject, error) {
	ids, err := s.favorites.GetFavorites(ctx)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return gen.ListFavorites200JSONResponse{Ids: ids}, nil
}

// ListFavoriteCampsites handles GET /favorites/campsites.
func (s *Server) ListFavoriteCampsites(ctx context.Context, _ gen.ListFavoriteCampsitesRequestObject) (gen.ListFavoriteCampsitesResponseObject, error) {
	sites, err := s.favorites.FavoriteCampsites(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListFavoriteCampsites200JSONResponse(campsitesToResponse(sites)), nil
}

// ToggleFavorite handles PUT /favorites/{id}.
// Ids are not checked against the catalog.
func (s *Server) ToggleFavorite(ctx context.Context, req gen.ToggleFavoriteRequestObject) (gen.ToggleFavoriteResponseObject, error) {
	now, err := s.favorites.ToggleFavorite(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return gen.ToggleFavorite200JSONResponse{Id: req.Id, Favorite: now}, nil
}
