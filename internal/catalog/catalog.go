// Package catalog holds the seeded campsite catalog.
// The seed is embedded at compile time and decoded once at start-up; nothing
// in the application mutates it afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

//go:embed seed.yaml
var seed []byte

// Catalog is the full seeded data set in its display order.
type Catalog struct {
	Destinations []domain.Destination `yaml:"destinations"`
	Campsites    []domain.Campsite    `yaml:"campsites"`
	Amenities    []domain.Amenity     `yaml:"amenities"`
}

// Load decodes the embedded seed.
func Load() (Catalog, error) {
	return Parse(seed)
}

// Parse decodes a YAML catalog and checks that campsite and destination
// identifiers are present and unique.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("catalog.Parse: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Campsites))
	for i, site := range c.Campsites {
		if site.ID == "" {
			return Catalog{}, fmt.Errorf("catalog.Parse: campsite %d: %w", i, errMissingID)
		}
		if _, dup := seen[site.ID]; dup {
			return Catalog{}, fmt.Errorf("catalog.Parse: campsite %q: %w", site.ID, errDuplicateID)
		}
		seen[site.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.Destinations))
	for i, d := range c.Destinations {
		if d.ID == "" {
			return Catalog{}, fmt.Errorf("catalog.Parse: destination %d: %w", i, errMissingID)
		}
		if _, dup := seen[d.ID]; dup {
			return Catalog{}, fmt.Errorf("catalog.Parse: destination %q: %w", d.ID, errDuplicateID)
		}
		seen[d.ID] = struct{}{}
	}

	return c, nil
}

var (
	errMissingID   = errors.New("missing id")
	errDuplicateID = errors.New("duplicate id")
)
