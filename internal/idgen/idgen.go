// Package idgen produces unique record identifiers.
package idgen

import "github.com/google/uuid"

// New returns an identifier unique for the process lifetime. UUIDv7
// combines a millisecond timestamp with random bits, so ids are also
// roughly sortable by creation time.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Entropy exhaustion only; fall back to v4
		return uuid.NewString()
	}
	return id.String()
}
