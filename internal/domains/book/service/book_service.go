package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
)

type bookService struct {
	repo repository.Repository
}

// NewBookService creates the book service with its persistence collaborator
// injected. The service holds no other state; every call is a single
// request/response round trip with no client-side locking or retries.
func NewBookService(repo repository.Repository) Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	book, err := s.repo.Save(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().Str("book_id", book.ID).Msg("Created new book")
	return book.ToResponse(), nil
}

func (s *bookService) GetByID(ctx context.Context, rawID string) (*model.BookResponse, error) {
	book, err := s.resolve(ctx, rawID)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("book_id", book.ID).Msg("Found book")
	return book.ToResponse(), nil
}

func (s *bookService) List(ctx context.Context, query model.ListQuery) (*model.PagedBookResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	books, total, err := s.repo.FindAllPaged(ctx, query.Page, query.Size)
	if err != nil {
		return nil, err
	}

	responses := make([]model.BookResponse, 0, len(books))
	for i := range books {
		responses = append(responses, *books[i].ToResponse())
	}

	log.Debug().Int("page", query.Page).Int("count", len(responses)).Msg("Listed books")
	return &model.PagedBookResponse{
		Books:       responses,
		CurrentPage: query.Page,
		TotalPages:  totalPages(total, query.Size),
		TotalBooks:  total,
	}, nil
}

func (s *bookService) Update(ctx context.Context, rawID string, req *model.UpdateBookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	book, err := s.resolve(ctx, rawID)
	if err != nil {
		return nil, err
	}

	// The resolved entity is mutated in place and saved back under the id
	// it was found with.
	req.ApplyToEntity(book)

	updated, err := s.repo.Save(ctx, book)
	if err != nil {
		return nil, err
	}

	log.Info().Str("book_id", updated.ID).Msg("Updated book")
	return updated.ToResponse(), nil
}

func (s *bookService) Delete(ctx context.Context, rawID string) error {
	book, err := s.resolve(ctx, rawID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, book); err != nil {
		return err
	}

	log.Info().Str("book_id", book.ID).Msg("Deleted book")
	return nil
}

// resolve turns a raw identifier into a stored book. The key-format check
// runs before the lookup, so a malformed key always yields ErrInvalidBookID
// and never ErrBookNotFound.
func (s *bookService) resolve(ctx context.Context, rawID string) (*model.Book, error) {
	if !model.IsValidID(rawID) {
		return nil, model.ErrInvalidBookID
	}
	return s.repo.FindByID(ctx, rawID)
}

// totalPages computes ceil(total/size); an empty store has zero pages.
func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
