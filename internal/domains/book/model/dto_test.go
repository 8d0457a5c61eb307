package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:         "T",
		Author:        "A",
		ISBN:          "1234567890123",
		PublishedDate: NewDate(2020, time.January, 1),
	}
}

func TestToEntityCopiesAllFieldsAndLeavesIDEmpty(t *testing.T) {
	req := validCreateRequest()

	book := req.ToEntity()

	assert.Empty(t, book.ID)
	assert.Equal(t, "T", book.Title)
	assert.Equal(t, "A", book.Author)
	assert.Equal(t, "1234567890123", book.ISBN)
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), book.PublishedDate)
}

func TestToResponseRendersDateAsFixedFormat(t *testing.T) {
	book := &Book{
		ID:            "507f1f77bcf86cd799439011",
		Title:         "T",
		Author:        "A",
		ISBN:          "1234567890123",
		PublishedDate: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := book.ToResponse()

	assert.Equal(t, "507f1f77bcf86cd799439011", resp.ID)
	assert.Equal(t, "01-01-2020", resp.PublishedDate)
	assert.Equal(t, "1234567890123", resp.ISBN)
}

func TestRoundTripPreservesEveryField(t *testing.T) {
	req := validCreateRequest()

	resp := req.ToEntity().ToResponse()

	assert.Empty(t, resp.ID)
	assert.Equal(t, req.Title, resp.Title)
	assert.Equal(t, req.Author, resp.Author)
	assert.Equal(t, req.ISBN, resp.ISBN)
	assert.Equal(t, "01-01-2020", resp.PublishedDate)
}

func TestApplyToEntityOverwritesOnlyPresentFields(t *testing.T) {
	book := validCreateRequest().ToEntity()
	book.ID = "507f1f77bcf86cd799439011"
	newTitle := "New"

	req := UpdateBookRequest{Title: &newTitle}
	req.ApplyToEntity(book)

	assert.Equal(t, "507f1f77bcf86cd799439011", book.ID)
	assert.Equal(t, "New", book.Title)
	assert.Equal(t, "A", book.Author)
	assert.Equal(t, "1234567890123", book.ISBN)
}

func TestApplyToEntityWithAllFieldsAbsentIsANoOp(t *testing.T) {
	book := validCreateRequest().ToEntity()
	book.ID = "507f1f77bcf86cd799439011"
	before := *book

	req := UpdateBookRequest{}
	req.ApplyToEntity(book)

	assert.Equal(t, before, *book)
}

func TestToEntityListConvertsEveryRequest(t *testing.T) {
	first := validCreateRequest()
	second := validCreateRequest()
	second.ISBN = "9999999999999"

	books := ToEntityList([]CreateBookRequest{first, second})

	require.Len(t, books, 2)
	assert.Equal(t, "1234567890123", books[0].ISBN)
	assert.Equal(t, "9999999999999", books[1].ISBN)
	assert.Empty(t, books[0].ID)
}

func TestDateUnmarshalAcceptsISODates(t *testing.T) {
	var req CreateBookRequest
	body := `{"title":"T","author":"A","isbn":"1234567890123","publishedDate":"2020-01-01"}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), req.PublishedDate.Time)
}

func TestDateUnmarshalRejectsOtherFormats(t *testing.T) {
	var req CreateBookRequest
	body := `{"publishedDate":"01/01/2020"}`

	err := json.Unmarshal([]byte(body), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestDateUnmarshalLeavesNullAbsent(t *testing.T) {
	var req UpdateBookRequest
	body := `{"publishedDate":null}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Nil(t, req.PublishedDate)
}
