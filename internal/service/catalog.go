package service

import (
	"slices"
	"strings"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

// GetDestinations returns every destination in seed order.
func (s *CatalogStore) GetDestinations() []domain.Destination {
	return slices.Clone(s.catalog.Destinations)
}

// GetAmenities returns the landing-page amenity highlights in seed order.
func (s *CatalogStore) GetAmenities() []domain.Amenity {
	return slices.Clone(s.catalog.Amenities)
}

// GetCampsites returns the campsites matching query, in catalog order.
// An empty query matches everything. Otherwise a campsite matches when its
// name, its location or any one of its tags contains query, ignoring case.
func (s *CatalogStore) GetCampsites(query string) []domain.Campsite {
	out := make([]domain.Campsite, 0, len(s.catalog.Campsites))
	if query == "" {
		for _, site := range s.catalog.Campsites {
			out = append(out, cloneCampsite(site))
		}
		return out
	}

	q := strings.ToLower(query)
	for _, site := range s.catalog.Campsites {
		if matches(site, q) {
			out = append(out, cloneCampsite(site))
		}
	}
	return out
}

// GetCampsiteByID returns the campsite with exactly this id.
// The boolean is false when the catalog has no such campsite.
func (s *CatalogStore) GetCampsiteByID(id string) (domain.Campsite, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Campsite{}, false
	}
	return cloneCampsite(s.catalog.Campsites[i]), true
}

// QuoteTotal prices a stay of nights at the campsite's nightly rate.
func QuoteTotal(site domain.Campsite, nights int) int {
	return site.Price * nights
}

// matches expects q already lowercased.
func matches(site domain.Campsite, q string) bool {
	if strings.Contains(strings.ToLower(site.Name), q) ||
		strings.Contains(strings.ToLower(site.Location), q) {
		return true
	}
	for _, tag := range site.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// cloneCampsite copies the slice fields so callers cannot reach the seed.
func cloneCampsite(site domain.Campsite) domain.Campsite {
	site.Tags = slices.Clone(site.Tags)
	site.Amenities = slices.Clone(site.Amenities)
	if site.Coordinates != nil {
		c := *site.Coordinates
		site.Coordinates = &c
	}
	return site
}
