package model

// CreateBookRequest is the payload for POST /books. All fields are required.
type CreateBookRequest struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedDate Date   `json:"publishedDate"`
}

// UpdateBookRequest is the payload for updating a book. Every field is
// optional; a nil field leaves the stored value unchanged.
type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	ISBN          *string `json:"isbn"`
	PublishedDate *Date   `json:"publishedDate"`
}

// BookResponse is the wire shape of a stored book. The published date is
// rendered as a fixed dd-MM-yyyy string.
type BookResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	PublishedDate string `json:"publishedDate"`
}

// PagedBookResponse is one page of books plus pagination totals.
type PagedBookResponse struct {
	Books       []BookResponse `json:"books"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalBooks  int64          `json:"totalBooks"`
}

// ListQuery holds the pagination parameters of GET /books.
type ListQuery struct {
	Page int `json:"page" form:"page,default=0"`
	Size int `json:"size" form:"size,default=10"`
}

// Conversion methods. Every field mapping is spelled out; there is no
// reflection-driven auto-mapping.

// ToEntity builds a new Book from the request. The id is left empty and is
// assigned by the repository on first save.
func (r CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:         r.Title,
		Author:        r.Author,
		ISBN:          r.ISBN,
		PublishedDate: r.PublishedDate.Time,
	}
}

// ToResponse converts a Book to its wire shape.
func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		PublishedDate: b.PublishedDate.Format(ResponseDateLayout),
	}
}

// ApplyToEntity overwrites only the fields present on the request. Absent
// fields keep their stored values and the id is never touched.
func (r UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.ISBN != nil {
		b.ISBN = *r.ISBN
	}
	if r.PublishedDate != nil && !r.PublishedDate.IsZero() {
		b.PublishedDate = r.PublishedDate.Time
	}
}

// ToEntityList is the batch form of ToEntity, used by the seeder.
func ToEntityList(requests []CreateBookRequest) []*Book {
	books := make([]*Book, 0, len(requests))
	for i := range requests {
		books = append(books, requests[i].ToEntity())
	}
	return books
}
