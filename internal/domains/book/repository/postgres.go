package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/book/model"
)

// postgresRepository implements Repository on a pgx connection pool. The
// books table carries a unique index on isbn; a violation surfaces from the
// database as SQLSTATE 23505 and is mapped to model.ErrDuplicateISBN.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a book repository backed by the given pool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const uniqueViolation = "23505"

func (r *postgresRepository) Save(ctx context.Context, book *model.Book) (*model.Book, error) {
	if book.ID == "" {
		book.ID = NewID()
	}

	query := `
        INSERT INTO books (id, title, author, isbn, published_date)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO UPDATE
        SET title          = EXCLUDED.title,
            author         = EXCLUDED.author,
            isbn           = EXCLUDED.isbn,
            published_date = EXCLUDED.published_date
    `

	_, err := r.pool.Exec(ctx, query, book.ID, book.Title, book.Author, book.ISBN, book.PublishedDate)
	if err != nil {
		return nil, mapStoreError("save book", err)
	}
	return book, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	query := `
        SELECT id, title, author, isbn, published_date
        FROM books
        WHERE id = $1
    `

	var b model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.PublishedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, mapStoreError("find book by id", err)
	}
	return &b, nil
}

func (r *postgresRepository) FindAllPaged(ctx context.Context, page, size int) ([]model.Book, int64, error) {
	// Keys are timestamp-prefixed, so ordering by id yields insertion order.
	query := `
        SELECT id, title, author, isbn, published_date
        FROM books
        ORDER BY id
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, size, int64(page)*int64(size))
	if err != nil {
		return nil, 0, mapStoreError("list books", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishedDate); err != nil {
			return nil, 0, mapStoreError("scan book row", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapStoreError("list books", err)
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *postgresRepository) Delete(ctx context.Context, book *model.Book) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, book.ID); err != nil {
		return mapStoreError("delete book", err)
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM books`).Scan(&total); err != nil {
		return 0, mapStoreError("count books", err)
	}
	return total, nil
}

// mapStoreError folds driver failures into the error taxonomy: isbn unique
// violations become ErrDuplicateISBN, timeouts become ErrStoreUnavailable,
// everything else is wrapped as-is.
func mapStoreError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, "isbn") {
		return model.ErrDuplicateISBN
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return model.ErrStoreUnavailable
	}
	return fmt.Errorf("%s: %w", op, err)
}
