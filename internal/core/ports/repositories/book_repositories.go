package repositories

import (
	"context"
	"time"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BookReader defines read operations for book data
type BookReader interface {
	// FindBookByID retrieves a specific book by its unique identifier.
	FindBookByID(ctx context.Context, bookID string) (*domain.Book, error)

	// ListBooks retrieves all books ordered by start date, newest first.
	ListBooks(ctx context.Context) ([]domain.Book, error)
}

// BookWriter defines write operations for book data
type BookWriter interface {
	// SaveBook persists a new book.
	SaveBook(ctx context.Context, book domain.Book) error

	// UpdateBookName renames a book. Returns apperrors.ErrNotFound if no row matched.
	UpdateBookName(ctx context.Context, bookID string, name string) error
}

// BookTxOperations defines book statements that run inside a caller-owned
// database transaction. They are used by the close-book and delete-book
// sequences, which must be atomic across several statements.
type BookTxOperations interface {
	// FindBookByIDForUpdate fetches a book and row-locks it for the duration
	// of the transaction, serializing concurrent mutations of the same book.
	FindBookByIDForUpdate(ctx context.Context, tx pgx.Tx, bookID string) (*domain.Book, error)

	// SaveBookInTx persists a new book within the given transaction.
	SaveBookInTx(ctx context.Context, tx pgx.Tx, book domain.Book) error

	// CloseBookInTx sets the book's end date. The statement only matches a
	// still-open book; it returns apperrors.ErrNotFound if no row matched.
	CloseBookInTx(ctx context.Context, tx pgx.Tx, bookID string, endDate time.Time) error

	// DeleteBookInTx removes the book row. Returns apperrors.ErrNotFound if
	// no row matched.
	DeleteBookInTx(ctx context.Context, tx pgx.Tx, bookID string) error
}

// BookRepositoryFacade combines all book-related repository interfaces
type BookRepositoryFacade interface {
	BookReader
	BookWriter
	BookTxOperations
}

// BookRepositoryWithTx extends BookRepositoryFacade with transaction capabilities
type BookRepositoryWithTx interface {
	BookRepositoryFacade
	TransactionManager
}
