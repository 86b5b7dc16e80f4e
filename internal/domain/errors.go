package domain

import "errors"

// ErrNotFound is returned when a requested campsite does not exist in the
// catalog. The store itself reports absence with a boolean; handlers and the
// CLI wrap this sentinel when they need an error value.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a request fails shape validation before it
// reaches the store (e.g. a booking request without a campsite id).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
