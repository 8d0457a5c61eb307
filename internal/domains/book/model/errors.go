package model

import (
	"errors"
	"net/http"
)

// The closed set of failure kinds the book pipeline can produce. Validation
// failures are carried separately as validation.Errors with per-field detail.
var (
	// ErrBookNotFound - a well-formed key with no record behind it.
	ErrBookNotFound = errors.New("book was not found")

	// ErrInvalidBookID - the raw identifier failed the key-format check.
	ErrInvalidBookID = errors.New("book id must be a valid 24-character hex string")

	// ErrDuplicateISBN - the store refused a write because the isbn is taken.
	ErrDuplicateISBN = errors.New("a book with this ISBN already exists")

	// ErrStoreUnavailable - the store timed out or is unreachable.
	ErrStoreUnavailable = errors.New("book store is unavailable")
)

// ToHTTPStatus maps a failure kind to its transport status. Anything
// uncategorized is a server error.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidBookID):
		return http.StatusBadRequest
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateISBN):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
