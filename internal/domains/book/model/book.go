package model

import (
	"regexp"
	"time"
)

// Book is the persisted record. The ID is the opaque store key assigned by
// the repository on first save; callers never set or change it.
type Book struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	ISBN          string    `json:"isbn" db:"isbn"`
	PublishedDate time.Time `json:"published_date" db:"published_date"`
}

// Store keys are 24 hexadecimal characters.
var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidID reports whether raw is a syntactically valid store key.
// The format check must run before any lookup so that a malformed key is
// reported as an invalid identifier, never as a missing record.
func IsValidID(raw string) bool {
	return idPattern.MatchString(raw)
}
