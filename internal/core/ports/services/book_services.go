package services

import (
	"context"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	"github.com/firmanw/ledger_books_app/internal/dto"
)

// BookReaderSvc defines read operations on books
type BookReaderSvc interface {
	// ListBooks retrieves all books, newest start date first.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// GetBookByID retrieves a single book.
	GetBookByID(ctx context.Context, bookID string) (*domain.Book, error)
}

// BookWriterSvc defines write operations on books
type BookWriterSvc interface {
	// CreateBook creates a new open book starting now.
	CreateBook(ctx context.Context, req dto.CreateBookRequest) (*domain.Book, error)

	// RenameBook changes a book's display name.
	RenameBook(ctx context.Context, bookID string, req dto.UpdateBookRequest) (*domain.Book, error)

	// DeleteBook deletes a book and, atomically, every transaction it owns.
	DeleteBook(ctx context.Context, bookID string) error
}

// BookSvcFacade combines all book registry operations
type BookSvcFacade interface {
	BookReaderSvc
	BookWriterSvc
}
