// Package id mints record identifiers. Every persisted entity gets a
// globally unique ID at creation; the ID never changes afterwards.
package id

import "github.com/google/uuid"

// New returns a fresh globally unique record ID.
func New() string {
	return uuid.NewString()
}
