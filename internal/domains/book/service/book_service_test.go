package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/suite"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
)

// fakeRepository is an in-memory stand-in for the persistence collaborator.
// It assigns keys on first save and enforces isbn uniqueness the way the
// real store does, so the service sees the same failure kinds.
type fakeRepository struct {
	books map[string]model.Book
	order []string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{books: make(map[string]model.Book)}
}

func (f *fakeRepository) Save(_ context.Context, book *model.Book) (*model.Book, error) {
	for id, existing := range f.books {
		if existing.ISBN == book.ISBN && id != book.ID {
			return nil, model.ErrDuplicateISBN
		}
	}
	if book.ID == "" {
		book.ID = repository.NewID()
		f.order = append(f.order, book.ID)
	}
	f.books[book.ID] = *book
	return book, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*model.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &book, nil
}

func (f *fakeRepository) FindAllPaged(_ context.Context, page, size int) ([]model.Book, int64, error) {
	start := page * size
	var out []model.Book
	for i := start; i < len(f.order) && i < start+size; i++ {
		out = append(out, f.books[f.order[i]])
	}
	return out, int64(len(f.order)), nil
}

func (f *fakeRepository) Delete(_ context.Context, book *model.Book) error {
	delete(f.books, book.ID)
	for i, id := range f.order {
		if id == book.ID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.order)), nil
}

type BookServiceSuite struct {
	suite.Suite

	ctx     context.Context
	repo    *fakeRepository
	service Service
}

func TestBookServiceSuite(t *testing.T) {
	suite.Run(t, new(BookServiceSuite))
}

func (s *BookServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = newFakeRepository()
	s.service = NewBookService(s.repo)
}

func (s *BookServiceSuite) createRequest(isbn string) *model.CreateBookRequest {
	return &model.CreateBookRequest{
		Title:         "T",
		Author:        "A",
		ISBN:          isbn,
		PublishedDate: model.NewDate(2020, time.January, 1),
	}
}

func (s *BookServiceSuite) mustCreate(isbn string) *model.BookResponse {
	resp, err := s.service.Create(s.ctx, s.createRequest(isbn))
	s.Require().NoError(err)
	return resp
}

func (s *BookServiceSuite) TestCreateReturnsGeneratedIDAndFormattedDate() {
	resp := s.mustCreate("1234567890123")

	s.True(model.IsValidID(resp.ID))
	s.Equal("1234567890123", resp.ISBN)
	s.Equal("01-01-2020", resp.PublishedDate)
}

func (s *BookServiceSuite) TestCreateRejectsInvalidRequestBeforePersistence() {
	req := s.createRequest("not-thirteen")
	req.Title = ""

	_, err := s.service.Create(s.ctx, req)

	var fieldErrs validation.Errors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Contains(fieldErrs, "title")
	s.Contains(fieldErrs, "isbn")

	count, _ := s.repo.Count(s.ctx)
	s.Zero(count)
}

func (s *BookServiceSuite) TestCreateSurfacesDuplicateISBNAsConflict() {
	s.mustCreate("1234567890123")

	_, err := s.service.Create(s.ctx, s.createRequest("1234567890123"))

	s.ErrorIs(err, model.ErrDuplicateISBN)
}

func (s *BookServiceSuite) TestGetByIDReturnsTheBook() {
	created := s.mustCreate("1234567890123")

	resp, err := s.service.GetByID(s.ctx, created.ID)

	s.Require().NoError(err)
	s.Equal(created, resp)
}

func (s *BookServiceSuite) TestGetByIDRejectsMalformedKey() {
	_, err := s.service.GetByID(s.ctx, "not-a-valid-key")

	s.ErrorIs(err, model.ErrInvalidBookID)
}

func (s *BookServiceSuite) TestGetByIDMalformedKeyNeverReportsNotFound() {
	// Even with records in the store, a malformed key must yield the
	// invalid-identifier kind, not not-found.
	s.mustCreate("1234567890123")

	_, err := s.service.GetByID(s.ctx, "zzz")

	s.ErrorIs(err, model.ErrInvalidBookID)
	s.NotErrorIs(err, model.ErrBookNotFound)
}

func (s *BookServiceSuite) TestGetByIDWellFormedAbsentKeyReportsNotFound() {
	_, err := s.service.GetByID(s.ctx, "507f1f77bcf86cd799439011")

	s.ErrorIs(err, model.ErrBookNotFound)
}

func (s *BookServiceSuite) TestListPagesAndTotals() {
	s.mustCreate("1111111111111")
	s.mustCreate("2222222222222")
	s.mustCreate("3333333333333")

	resp, err := s.service.List(s.ctx, model.ListQuery{Page: 0, Size: 2})

	s.Require().NoError(err)
	s.Len(resp.Books, 2)
	s.Equal(0, resp.CurrentPage)
	s.Equal(2, resp.TotalPages)
	s.EqualValues(3, resp.TotalBooks)
}

func (s *BookServiceSuite) TestListEmptyStoreHasZeroPages() {
	resp, err := s.service.List(s.ctx, model.ListQuery{Page: 0, Size: 10})

	s.Require().NoError(err)
	s.Empty(resp.Books)
	s.Zero(resp.TotalPages)
	s.Zero(resp.TotalBooks)
}

func (s *BookServiceSuite) TestListRejectsInvalidPagination() {
	_, err := s.service.List(s.ctx, model.ListQuery{Page: -1, Size: 0})

	var fieldErrs validation.Errors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Contains(fieldErrs, "page")
	s.Contains(fieldErrs, "size")
}

func (s *BookServiceSuite) TestUpdateOverwritesOnlyProvidedFields() {
	created := s.mustCreate("1234567890123")
	newTitle := "New"

	resp, err := s.service.Update(s.ctx, created.ID, &model.UpdateBookRequest{Title: &newTitle})

	s.Require().NoError(err)
	s.Equal(created.ID, resp.ID)
	s.Equal("New", resp.Title)
	s.Equal("A", resp.Author)
	s.Equal("1234567890123", resp.ISBN)
}

func (s *BookServiceSuite) TestUpdateWithAllFieldsAbsentChangesNothing() {
	created := s.mustCreate("1234567890123")

	resp, err := s.service.Update(s.ctx, created.ID, &model.UpdateBookRequest{})

	s.Require().NoError(err)
	s.Equal(created, resp)
}

func (s *BookServiceSuite) TestUpdateSurfacesDuplicateISBN() {
	s.mustCreate("1111111111111")
	second := s.mustCreate("2222222222222")
	taken := "1111111111111"

	_, err := s.service.Update(s.ctx, second.ID, &model.UpdateBookRequest{ISBN: &taken})

	s.ErrorIs(err, model.ErrDuplicateISBN)
}

func (s *BookServiceSuite) TestUpdateValidatesBeforeResolvingIdentity() {
	blank := ""

	_, err := s.service.Update(s.ctx, "not-a-valid-key", &model.UpdateBookRequest{Title: &blank})

	var fieldErrs validation.Errors
	s.Require().ErrorAs(err, &fieldErrs)
	s.Contains(fieldErrs, "title")
}

func (s *BookServiceSuite) TestUpdateAbsentBookReportsNotFound() {
	newTitle := "New"

	_, err := s.service.Update(s.ctx, "507f1f77bcf86cd799439011", &model.UpdateBookRequest{Title: &newTitle})

	s.ErrorIs(err, model.ErrBookNotFound)
}

func (s *BookServiceSuite) TestDeleteRemovesTheBook() {
	created := s.mustCreate("1234567890123")

	s.Require().NoError(s.service.Delete(s.ctx, created.ID))

	_, err := s.service.GetByID(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrBookNotFound)
}

func (s *BookServiceSuite) TestDeleteAbsentBookReportsNotFound() {
	s.ErrorIs(s.service.Delete(s.ctx, "507f1f77bcf86cd799439011"), model.ErrBookNotFound)
}

func (s *BookServiceSuite) TestDeleteMalformedKeyReportsInvalidIdentifier() {
	s.ErrorIs(s.service.Delete(s.ctx, "bad"), model.ErrInvalidBookID)
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 2, 2},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_books_size_%d", tc.total, tc.size), func(t *testing.T) {
			if got := totalPages(tc.total, tc.size); got != tc.want {
				t.Fatalf("totalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
			}
		})
	}
}
