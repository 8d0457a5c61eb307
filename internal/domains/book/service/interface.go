package service

import (
	"context"

	"library-api/internal/domains/book/model"
)

// Service carries the business rules for books: request validation,
// identity resolution, isbn uniqueness surfacing, and the mapping between
// wire shapes and the stored entity. It is the only component that decides
// outcomes; handlers and the repository stay mechanical.
type Service interface {
	// Create validates the request, persists a new book and returns it with
	// the store-assigned id. A taken isbn surfaces as model.ErrDuplicateISBN.
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.BookResponse, error)

	// GetByID resolves the raw identifier and returns the matching book.
	GetByID(ctx context.Context, rawID string) (*model.BookResponse, error)

	// List returns one page of books in insertion order plus totals.
	List(ctx context.Context, query model.ListQuery) (*model.PagedBookResponse, error)

	// Update applies a partial update to the resolved book and saves it
	// back under the same id.
	Update(ctx context.Context, rawID string, req *model.UpdateBookRequest) (*model.BookResponse, error)

	// Delete removes the resolved book. Deleting an absent id is reported
	// as model.ErrBookNotFound.
	Delete(ctx context.Context, rawID string) error
}
