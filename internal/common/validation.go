package common

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MaxPlayerNameLength bounds player names so they fit the status table.
const MaxPlayerNameLength = 24

var ErrInvalidPlayerName = errors.New("invalid player name")

// ValidatePlayerName accepts names of letters, digits, '-' and '_'.
// Whitespace is rejected because commands are whitespace separated.
func ValidatePlayerName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPlayerName)
	}
	if len(name) > MaxPlayerNameLength {
		return fmt.Errorf("%w: %q is longer than %d", ErrInvalidPlayerName, name, MaxPlayerNameLength)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidPlayerName, name, r)
		}
	}
	return nil
}

// NormalizeName trims and collapses the spacing of a user-typed name.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
