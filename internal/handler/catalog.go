package handler

import (
	"context"
	"fmt"

	"github.com/pkordes/ventureline/backend/internal/domain"
	"github.com/pkordes/ventureline/backend/internal/handler/gen"
)

// ListDestinations handles GET /destinations.
func (s *Server) ListDestinations(_ context.Context, _ gen.ListDestinationsRequestObject) (gen.ListDestinationsResponseObject, error) {
	dests := s.catalog.GetDestinations()
	out := make(gen.ListDestinations200JSONResponse, len(dests))
	for i, d := range dests {
		out[i] = gen.Destination{Id: d.ID, Name: d.Name, Location: d.Location, Image: d.Image}
	}
	return out, nil
}

// ListAmenities handles GET /amenities.
func (s *Server) ListAmenities(_ context.Context, _ gen.ListAmenitiesRequestObject) (gen.ListAmenitiesResponseObject, error) {
	amenities := s.catalog.GetAmenities()
	out := make(gen.ListAmenities200JSONResponse, len(amenities))
	for i, a := range amenities {
		out[i] = gen.Amenity{Icon: a.Icon, Title: a.Title, Description: a.Description}
	}
	return out, nil
}

// ListCampsites handles GET /campsites.
// A missing or empty ?q= returns the whole catalog.
func (s *Server) ListCampsites(_ context.Context, req gen.ListCampsitesRequestObject) (gen.ListCampsitesResponseObject, error) {
	var q string
	if req.Params.Q != nil {
		q = *req.Params.Q
	}
	return gen.ListCampsites200JSONResponse(campsitesToResponse(s.catalog.GetCampsites(q))), nil
}

// GetCampsite handles GET /campsites/{id}.
func (s *Server) GetCampsite(_ context.Context, req gen.GetCampsiteRequestObject) (gen.GetCampsiteResponseObject, error) {
	site, ok := s.catalog.GetCampsiteByID(req.Id)
	if !ok {
		err := fmt.Errorf("campsite %q %w", req.Id, domain.ErrNotFound)
		return gen.GetCampsite404JSONResponse(notFoundBody(err.Error())), nil
	}
	return gen.GetCampsite200JSONResponse(campsiteToResponse(site)), nil
}

// --- mapping helpers --------------------------------------------------------

func campsitesToResponse(sites []domain.Campsite) []gen.Campsite {
	out := make([]gen.Campsite, len(sites))
	for i, c := range sites {
		out[i] = campsiteToResponse(c)
	}
	return out
}

// campsiteToResponse converts a domain.Campsite into the generated gen.Campsite.
// Optional fields that are unset in the catalog are omitted from the JSON.
func campsiteToResponse(c domain.Campsite) gen.Campsite {
	resp := gen.Campsite{
		Id:       c.ID,
		Name:     c.Name,
		Image:    c.Image,
		Location: c.Location,
		Rating:   c.Rating,
		Reviews:  c.Reviews,
		Price:    c.Price,
		Tags:     c.Tags,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if c.Description != "" {
		resp.Description = &c.Description
	}
	if len(c.Amenities) > 0 {
		resp.Amenities = &c.Amenities
	}
	if c.IsNew {
		resp.IsNew = &c.IsNew
	}
	if c.IsEco {
		resp.IsEco = &c.IsEco
	}
	if c.Coordinates != nil {
		resp.Coordinates = &gen.Coordinates{Top: c.Coordinates.Top, Left: c.Coordinates.Left}
	}
	return resp
}
