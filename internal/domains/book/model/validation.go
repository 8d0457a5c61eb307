package model

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var isbnPattern = regexp.MustCompile(`^\d{13}$`)

// maxPageWindow bounds page and size so the store offset (page*size) stays
// inside int64.
const maxPageWindow = math.MaxInt32

// notBlank rejects values that are only whitespace. Absent values are left
// to Required / NilOrNotEmpty so each violation is reported once.
func notBlank(message string) validation.RuleFunc {
	return func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil || validation.IsEmpty(v) {
			return nil
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

// Validate checks every field of a create request and reports all
// violations together, one entry per offending field.
func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Title is required."),
			validation.By(notBlank("Title is required.")),
		),
		validation.Field(&r.Author,
			validation.Required.Error("Author is required."),
			validation.By(notBlank("Author is required.")),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("ISBN is required."),
			validation.Match(isbnPattern).Error("ISBN must be exactly 13 digits"),
		),
		validation.Field(&r.PublishedDate,
			validation.Required.Error("Published date is required."),
			validation.By(notInFuture),
		),
	)
}

// Validate applies the create rules to each present field. Nil fields are
// skip markers, not invalid values, and are not checked.
func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("Title must not be blank."),
			validation.By(notBlank("Title must not be blank.")),
		),
		validation.Field(&r.Author,
			validation.NilOrNotEmpty.Error("Author must not be blank."),
			validation.By(notBlank("Author must not be blank.")),
		),
		validation.Field(&r.ISBN,
			validation.NilOrNotEmpty.Error("ISBN must not be blank."),
			validation.Match(isbnPattern).Error("ISBN must be exactly 13 digits"),
		),
		validation.Field(&r.PublishedDate,
			validation.By(notInFuture),
		),
	)
}

// Validate rejects negative pages and page sizes below one. A size of zero
// would make the total-pages computation undefined, so it is refused here
// instead of being forwarded to the store.
func (q ListQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page,
			validation.Min(0).Error("page must not be negative"),
			validation.Max(maxPageWindow).Error("page is out of range"),
		),
		validation.Field(&q.Size,
			validation.Required.Error("size must be at least 1"),
			validation.Min(1).Error("size must be at least 1"),
			validation.Max(maxPageWindow).Error("size is out of range"),
		),
	)
}

// notInFuture accepts dates up to and including today.
func notInFuture(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(v) {
		return nil
	}
	t, ok := v.(time.Time)
	if !ok {
		return errors.New("must be a valid date")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if t.After(today) {
		return errors.New("Published date cannot be in future.")
	}
	return nil
}
