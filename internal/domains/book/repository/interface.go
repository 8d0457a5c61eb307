package repository

import (
	"context"

	"library-api/internal/domains/book/model"
)

// Repository is the persistence collaborator contract for books.
// Implementations own key assignment and enforce the unique constraint on
// isbn; the store is the single source of truth for uniqueness, so two
// concurrent saves with the same isbn race there and at most one wins.
type Repository interface {
	// Save persists the book, assigning a key when the book has none.
	// Returns model.ErrDuplicateISBN when the isbn constraint is violated.
	Save(ctx context.Context, book *model.Book) (*model.Book, error)

	// FindByID returns model.ErrBookNotFound when no record has the key.
	FindByID(ctx context.Context, id string) (*model.Book, error)

	// FindAllPaged returns one page of books in insertion order together
	// with the total number of books in the store.
	FindAllPaged(ctx context.Context, page, size int) ([]model.Book, int64, error)

	// Delete removes the book by its key. Removal is idempotent.
	Delete(ctx context.Context, book *model.Book) error

	// Count reports the total number of stored books. Used by the seeder.
	Count(ctx context.Context) (int64, error)
}
