package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "red", true},
		{"digits and marks", "player_2-b", true},
		{"unicode letters", "Zoë", true},
		{"empty", "", false},
		{"space", "red team", false},
		{"colon", "a:b", false},
		{"too long", "abcdefghijklmnopqrstuvwxyz", false},
		{"at limit", "abcdefghijklmnopqrstuvwx", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlayerName(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPlayerName)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "North America", NormalizeName("  North   America "))
	assert.Equal(t, "", NormalizeName("   "))
	assert.Equal(t, "Siam", NormalizeName("Siam"))
}
