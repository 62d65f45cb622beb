package api

import (
	"time"

	"github.com/parkyapi/parky/internal/domain"
)

// Wire-facing request/response structures. Read, create and update shapes
// are kept distinct so each operation's accepted fields are an explicit
// contract and internal-only fields never leak onto the wire.

// NationalParkResponse is the read shape of a national park.
type NationalParkResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Established time.Time `json:"established"`
	Picture     string    `json:"picture"`
}

// NationalParkCreateRequest defines the payload for creating a park.
// The ID is store-assigned and therefore absent here.
type NationalParkCreateRequest struct {
	Name        string    `json:"name" validate:"required"`
	State       string    `json:"state"`
	Established time.Time `json:"established"`
	Picture     string    `json:"picture"`
}

// NationalParkUpdateRequest defines the payload for a full-replace update.
// The ID must match the path id.
type NationalParkUpdateRequest struct {
	ID          int       `json:"id" validate:"required,gt=0"`
	Name        string    `json:"name" validate:"required"`
	State       string    `json:"state"`
	Established time.Time `json:"established"`
	Picture     string    `json:"picture"`
}

// TrailResponse is the read shape of a trail. The owning park is always
// resolved and embedded, never a bare foreign key.
type TrailResponse struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	Distance       float64               `json:"distance"`
	ElevationGain  float64               `json:"elevation_gain"`
	Difficulty     string                `json:"difficulty"`
	Picture        string                `json:"picture"`
	NationalParkID int                   `json:"national_park_id"`
	NationalPark   *NationalParkResponse `json:"national_park,omitempty"`
}

// TrailCreateRequest defines the payload for creating a trail.
type TrailCreateRequest struct {
	Name           string  `json:"name" validate:"required"`
	Distance       float64 `json:"distance" validate:"gte=0"`
	ElevationGain  float64 `json:"elevation_gain" validate:"gte=0"`
	Difficulty     string  `json:"difficulty" validate:"required,oneof=Easy Moderate Difficult"`
	Picture        string  `json:"picture"`
	NationalParkID int     `json:"national_park_id" validate:"required,gt=0"`
}

// TrailUpdateRequest defines the payload for a full-replace update of a trail.
type TrailUpdateRequest struct {
	ID             int     `json:"id" validate:"required,gt=0"`
	Name           string  `json:"name" validate:"required"`
	Distance       float64 `json:"distance" validate:"gte=0"`
	ElevationGain  float64 `json:"elevation_gain" validate:"gte=0"`
	Difficulty     string  `json:"difficulty" validate:"required,oneof=Easy Moderate Difficult"`
	Picture        string  `json:"picture"`
	NationalParkID int     `json:"national_park_id" validate:"required,gt=0"`
}

// AuthenticationRequest defines the payload for the authenticate and
// register endpoints.
type AuthenticationRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication
// endpoints. The password never appears here in any form.
type AuthResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// Mapping between DTOs and domain entities.

func parkToResponse(p *domain.NationalPark) NationalParkResponse {
	return NationalParkResponse{
		ID:          p.ID,
		Name:        p.Name,
		State:       p.State,
		Established: p.Established,
		Picture:     p.Picture,
	}
}

func (req *NationalParkCreateRequest) toDomain() *domain.NationalPark {
	return &domain.NationalPark{
		Name:        req.Name,
		State:       req.State,
		Established: req.Established,
		Picture:     req.Picture,
	}
}

func (req *NationalParkUpdateRequest) toDomain() *domain.NationalPark {
	return &domain.NationalPark{
		ID:          req.ID,
		Name:        req.Name,
		State:       req.State,
		Established: req.Established,
		Picture:     req.Picture,
	}
}

func trailToResponse(t *domain.Trail) TrailResponse {
	resp := TrailResponse{
		ID:             t.ID,
		Name:           t.Name,
		Distance:       t.Distance,
		ElevationGain:  t.ElevationGain,
		Difficulty:     string(t.Difficulty),
		Picture:        t.Picture,
		NationalParkID: t.NationalParkID,
	}
	if t.NationalPark != nil {
		park := parkToResponse(t.NationalPark)
		resp.NationalPark = &park
	}
	return resp
}

func (req *TrailCreateRequest) toDomain() *domain.Trail {
	return &domain.Trail{
		Name:           req.Name,
		Distance:       req.Distance,
		ElevationGain:  req.ElevationGain,
		Difficulty:     domain.TrailDifficulty(req.Difficulty),
		Picture:        req.Picture,
		NationalParkID: req.NationalParkID,
	}
}

func (req *TrailUpdateRequest) toDomain() *domain.Trail {
	return &domain.Trail{
		ID:             req.ID,
		Name:           req.Name,
		Distance:       req.Distance,
		ElevationGain:  req.ElevationGain,
		Difficulty:     domain.TrailDifficulty(req.Difficulty),
		Picture:        req.Picture,
		NationalParkID: req.NationalParkID,
	}
}

func userToAuthResponse(u *domain.User, token string) AuthResponse {
	return AuthResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		Token:    token,
	}
}
