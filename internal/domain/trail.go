package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors for Trail.
var (
	ErrEmptyTrailName = errors.New("trail name cannot be empty")
	ErrMissingPark    = errors.New("trail must reference a national park")
)

// TrailDifficulty enumerates the supported difficulty ratings.
type TrailDifficulty string

const (
	DifficultyEasy      TrailDifficulty = "Easy"
	DifficultyModerate  TrailDifficulty = "Moderate"
	DifficultyDifficult TrailDifficulty = "Difficult"
)

// ParseDifficulty converts a string into a TrailDifficulty.
// Returns ErrInvalidDifficulty for unknown values.
func ParseDifficulty(s string) (TrailDifficulty, error) {
	switch TrailDifficulty(s) {
	case DifficultyEasy, DifficultyModerate, DifficultyDifficult:
		return TrailDifficulty(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
}

// IsValid reports whether the difficulty is one of the known values.
func (d TrailDifficulty) IsValid() bool {
	_, err := ParseDifficulty(string(d))
	return err == nil
}

// Trail represents a hiking trail inside a national park. Every trail is
// owned by exactly one NationalPark, referenced by NationalParkID; reads
// resolve and attach the owning park, never a bare foreign key.
type Trail struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Distance       float64         `json:"distance"`
	ElevationGain  float64         `json:"elevation_gain"`
	Difficulty     TrailDifficulty `json:"difficulty"`
	Picture        string          `json:"picture"`
	NationalParkID int             `json:"national_park_id"`
	NationalPark   *NationalPark   `json:"national_park,omitempty"`
}

// Validate checks if the Trail has valid data.
// Returns an error if any field fails validation.
func (t *Trail) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTrailName
	}
	if !t.Difficulty.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, t.Difficulty)
	}
	if t.NationalParkID <= 0 {
		return ErrMissingPark
	}
	return nil
}
