package domain

import (
	"errors"
	"strings"
	"time"
)

// Validation errors for NationalPark.
var (
	ErrEmptyParkName = errors.New("national park name cannot be empty")
)

// NationalPark represents a national park in the catalog.
// The ID is assigned by the store on creation and is immutable afterwards.
type NationalPark struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Established time.Time `json:"established"`
	Picture     string    `json:"picture"`
}

// Validate checks if the NationalPark has valid data.
// Returns an error if any field fails validation.
func (p *NationalPark) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyParkName
	}
	return nil
}

// NormalizeName returns the canonical form of an entity name used for
// uniqueness comparisons: whitespace-trimmed and lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
