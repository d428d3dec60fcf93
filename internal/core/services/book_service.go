package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
	"github.com/firmanw/ledger_books_app/internal/dto"
)

// bookService implements the book registry: CRUD over books with the
// cascade-delete contract.
type bookService struct {
	BaseService
	bookRepo portsrepo.BookRepositoryWithTx
	txnRepo  portsrepo.TransactionRepositoryWithTx
}

// NewBookService creates a new book registry service.
func NewBookService(bookRepo portsrepo.BookRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryWithTx) portssvc.BookSvcFacade {
	return &bookService{
		bookRepo: bookRepo,
		txnRepo:  txnRepo,
	}
}

var _ portssvc.BookSvcFacade = (*bookService)(nil)

// CreateBook creates a new open book starting now.
func (s *bookService) CreateBook(ctx context.Context, req dto.CreateBookRequest) (*domain.Book, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: book name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	book := domain.Book{
		BookID:    uuid.NewString(),
		Name:      name,
		StartDate: now,
		CreatedAt: now,
	}

	if err := s.bookRepo.SaveBook(ctx, book); err != nil {
		s.LogError(ctx, err, "Failed to save book")
		return nil, fmt.Errorf("failed to save book: %w", err)
	}

	s.LogInfo(ctx, "Book created successfully", slog.String("book_id", book.BookID))
	return &book, nil
}

// ListBooks retrieves all books, newest start date first.
func (s *bookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookRepo.ListBooks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list books")
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// GetBookByID retrieves a single book.
func (s *bookService) GetBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	book, err := s.bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find book by ID", slog.String("book_id", bookID))
		}
		return nil, err
	}
	return book, nil
}

// RenameBook changes a book's display name.
func (s *bookService) RenameBook(ctx context.Context, bookID string, req dto.UpdateBookRequest) (*domain.Book, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: book name is required", apperrors.ErrValidation)
	}

	if err := s.bookRepo.UpdateBookName(ctx, bookID, name); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to rename book", slog.String("book_id", bookID))
		}
		return nil, err
	}

	book, err := s.bookRepo.FindBookByID(ctx, bookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload book after rename", slog.String("book_id", bookID))
		return nil, err
	}

	s.LogInfo(ctx, "Book renamed successfully", slog.String("book_id", bookID))
	return book, nil
}

// DeleteBook deletes a book and every transaction it owns as one atomic
// unit. The dependent rows go first, then the book row; any failure
// rolls the whole delete back.
func (s *bookService) DeleteBook(ctx context.Context, bookID string) error {
	tx, err := s.bookRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction for book delete", slog.String("book_id", bookID))
		return fmt.Errorf("failed to begin book delete: %w", err)
	}
	defer func() {
		_ = s.bookRepo.Rollback(ctx, tx)
	}()

	// Lock the book row first so a concurrent close cannot interleave.
	if _, err := s.bookRepo.FindBookByIDForUpdate(ctx, tx, bookID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock book for delete", slog.String("book_id", bookID))
		}
		return err
	}

	deleted, err := s.txnRepo.DeleteByBookInTx(ctx, tx, bookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete book transactions", slog.String("book_id", bookID))
		return fmt.Errorf("failed to delete book transactions: %w", err)
	}

	if err := s.bookRepo.DeleteBookInTx(ctx, tx, bookID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete book", slog.String("book_id", bookID))
		}
		return err
	}

	if err := s.bookRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit book delete", slog.String("book_id", bookID))
		return fmt.Errorf("failed to commit book delete: %w", err)
	}

	s.LogInfo(ctx, "Book deleted successfully",
		slog.String("book_id", bookID),
		slog.Int64("transactions_deleted", deleted))
	return nil
}
