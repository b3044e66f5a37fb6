// Package id defines the identifier type shared by every stored record.
// Identifiers are UUIDv7, so freshly created rows sort by creation time
// without an extra timestamp index.
package id

import (
	"github.com/google/uuid"
)

// ID identifies a stored record.
type ID = uuid.UUID

// New returns a fresh time-ordered identifier.
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// V7 only fails when the random source does; fall back to V4
		return uuid.New()
	}
	return id
}

// Parse validates and converts a string form.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse panics on malformed input. For fixtures and constants.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero identifier.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether id is the zero identifier.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
