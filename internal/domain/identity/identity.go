// Package identity generates row identifiers.
package identity

import (
	"regexp"

	"github.com/google/uuid"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// NewID returns a random version 4 identifier in the canonical 36 character
// lowercase form. uuid.NewString reads from crypto/rand and panics only if
// the system entropy source is broken.
func NewID() string {
	return uuid.NewString()
}

// IsID reports whether s has the shape produced by NewID.
func IsID(s string) bool {
	return idPattern.MatchString(s)
}
