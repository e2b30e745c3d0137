// Package model defines the hotel booking domain entities, their validation
// rules, and the shared time helpers used by the API client.
package model

import (
	"regexp"

	"github.com/google/uuid"
)

// BaseEntity holds the server-assigned identifier shared by every domain
// record. The ID is empty before creation and a UUID string afterwards.
type BaseEntity struct {
	ID string `json:"id,omitempty"`
}

// IsPersisted reports whether the entity has been assigned an ID.
func (e BaseEntity) IsPersisted() bool {
	return e.ID != ""
}

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// validUUID reports whether s is a well-formed UUID string.
func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
