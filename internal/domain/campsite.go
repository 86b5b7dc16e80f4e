// Package domain contains the core data types for the Ventureline backend.
// This package has no internal dependencies and is imported by every other
// internal package (catalog, repo, service, handler, cli).
package domain

// Coordinates places a campsite pin on the mock search map.
// Both values are CSS percentage offsets such as "35%".
type Coordinates struct {
	Top  string `json:"top" yaml:"top"`
	Left string `json:"left" yaml:"left"`
}

// Campsite is a bookable site in the catalog.
// Campsites are seeded at start-up and never change afterwards.
type Campsite struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Image       string       `json:"image" yaml:"image"`
	Location    string       `json:"location" yaml:"location"`
	Rating      float64      `json:"rating" yaml:"rating"`
	Reviews     int          `json:"reviews" yaml:"reviews"`
	Price       int          `json:"price" yaml:"price"` // nightly, whole dollars
	Tags        []string     `json:"tags" yaml:"tags"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Amenities   []string     `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	IsNew       bool         `json:"isNew,omitempty" yaml:"isNew,omitempty"`
	IsEco       bool         `json:"isEco,omitempty" yaml:"isEco,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" yaml:"coordinates,omitempty"` // nil when the site has no map pin
}

// Destination is a featured region shown on the landing page.
type Destination struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Image    string `json:"image" yaml:"image"`
}

// Amenity is a landing-page feature highlight.
type Amenity struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}
