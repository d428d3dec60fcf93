package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBookRepository persists books through a pgx connection pool.
type PgxBookRepository struct {
	BaseRepository
}

// newPgxBookRepository creates a new repository for book data.
func newPgxBookRepository(pool *pgxpool.Pool) portsrepo.BookRepositoryWithTx {
	return &PgxBookRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BookRepositoryWithTx = (*PgxBookRepository)(nil)

func scanBook(row pgx.Row) (*domain.Book, error) {
	var book domain.Book
	err := row.Scan(
		&book.BookID,
		&book.Name,
		&book.StartDate,
		&book.EndDate,
		&book.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// SaveBook persists a new book.
func (r *PgxBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	query := `
		INSERT INTO books (book_id, name, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		book.BookID,
		book.Name,
		book.StartDate,
		book.EndDate,
		book.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book %s: %w", book.BookID, err)
	}
	return nil
}

// FindBookByID retrieves a book by its ID.
func (r *PgxBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	query := `
		SELECT book_id, name, start_date, end_date, created_at
		FROM books
		WHERE book_id = $1;
	`
	book, err := scanBook(r.Pool.QueryRow(ctx, query, bookID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find book by ID %s: %w", bookID, err)
	}
	return book, nil
}

// ListBooks retrieves all books ordered by start date, newest first.
func (r *PgxBookRepository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	query := `
		SELECT book_id, name, start_date, end_date, created_at
		FROM books
		ORDER BY start_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []domain.Book{}
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.BookID,
			&book.Name,
			&book.StartDate,
			&book.EndDate,
			&book.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}

// UpdateBookName renames a book.
func (r *PgxBookRepository) UpdateBookName(ctx context.Context, bookID string, name string) error {
	query := `UPDATE books SET name = $1 WHERE book_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, name, bookID)
	if err != nil {
		return fmt.Errorf("failed to rename book %s: %w", bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBookByIDForUpdate fetches a book inside the given transaction and
// row-locks it until the transaction ends.
func (r *PgxBookRepository) FindBookByIDForUpdate(ctx context.Context, tx pgx.Tx, bookID string) (*domain.Book, error) {
	query := `
		SELECT book_id, name, start_date, end_date, created_at
		FROM books
		WHERE book_id = $1
		FOR UPDATE;
	`
	book, err := scanBook(tx.QueryRow(ctx, query, bookID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock book %s: %w", bookID, err)
	}
	return book, nil
}

// SaveBookInTx persists a new book within the given transaction.
func (r *PgxBookRepository) SaveBookInTx(ctx context.Context, tx pgx.Tx, book domain.Book) error {
	query := `
		INSERT INTO books (book_id, name, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := tx.Exec(ctx, query,
		book.BookID,
		book.Name,
		book.StartDate,
		book.EndDate,
		book.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book %s: %w", book.BookID, err)
	}
	return nil
}

// CloseBookInTx seals a still-open book by setting its end date. The
// end_date IS NULL predicate keeps a double close from matching.
func (r *PgxBookRepository) CloseBookInTx(ctx context.Context, tx pgx.Tx, bookID string, endDate time.Time) error {
	query := `UPDATE books SET end_date = $1 WHERE book_id = $2 AND end_date IS NULL;`
	tag, err := tx.Exec(ctx, query, endDate, bookID)
	if err != nil {
		return fmt.Errorf("failed to close book %s: %w", bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBookInTx removes the book row within the given transaction.
func (r *PgxBookRepository) DeleteBookInTx(ctx context.Context, tx pgx.Tx, bookID string) error {
	query := `DELETE FROM books WHERE book_id = $1;`
	tag, err := tx.Exec(ctx, query, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete book %s: %w", bookID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
