package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNationalParkValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		park    NationalPark
		wantErr error
	}{
		{
			name: "valid park",
			park: NationalPark{
				Name:        "Acadia",
				State:       "Maine",
				Established: time.Date(1919, 2, 26, 0, 0, 0, 0, time.UTC),
				Picture:     "/images/acadia.jpg",
			},
			wantErr: nil,
		},
		{
			name:    "empty name",
			park:    NationalPark{Name: ""},
			wantErr: ErrEmptyParkName,
		},
		{
			name:    "whitespace-only name",
			park:    NationalPark{Name: "   "},
			wantErr: ErrEmptyParkName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.park.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acadia", NormalizeName("  Acadia "))
	assert.Equal(t, "zion", NormalizeName("ZION"))
	assert.Equal(t, "", NormalizeName("   "))
}
