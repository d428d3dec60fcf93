package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
	"github.com/firmanw/ledger_books_app/internal/dto"
	"github.com/firmanw/ledger_books_app/internal/utils/accounting"
)

// ErrBookAlreadyClosed is returned when the close operation targets a
// book whose end date is already set.
var ErrBookAlreadyClosed = fmt.Errorf("%w: book is already closed", apperrors.ErrValidation)

const (
	carryForwardDescription = "Opening balance (carried forward)"
	carryDeficitDescription = "Opening balance (deficit)"
)

// bookLifecycleService orchestrates the close-and-carry-forward workflow.
// Every storage mutation of a single CloseBook call happens inside one
// database transaction owned by this service.
type bookLifecycleService struct {
	BaseService
	bookRepo portsrepo.BookRepositoryWithTx
	txnRepo  portsrepo.TransactionRepositoryWithTx
}

// NewBookLifecycleService creates the close-book orchestrator.
func NewBookLifecycleService(bookRepo portsrepo.BookRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryWithTx) portssvc.BookLifecycleSvcFacade {
	return &bookLifecycleService{
		bookRepo: bookRepo,
		txnRepo:  txnRepo,
	}
}

var _ portssvc.BookLifecycleSvcFacade = (*bookLifecycleService)(nil)

// CloseBook archives the book's unarchived transactions, seals the book,
// opens a successor and optionally seeds it with the closed balance.
//
// The sequence runs under a single transaction: a failure at any step
// leaves the ledger exactly as it was, so callers may retry after a
// storage failure without double-archiving or creating duplicate
// successor books. The book row is locked up front, serializing
// concurrent close/delete attempts on the same book.
func (s *bookLifecycleService) CloseBook(ctx context.Context, req dto.CloseBookRequest) (*dto.CloseBookResponse, error) {
	logger := s.GetLogger(ctx).With(slog.String("book_id", req.BookID))

	tx, err := s.bookRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin close-book transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to begin close-book transaction: %w", err)
	}
	defer func() {
		_ = s.bookRepo.Rollback(ctx, tx) // no-op once committed
	}()

	book, err := s.bookRepo.FindBookByIDForUpdate(ctx, tx, req.BookID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Close requested for nonexistent book")
			return nil, err
		}
		logger.Error("Failed to lock book for close", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to lock book %s: %w", req.BookID, err)
	}
	if !book.IsOpen() {
		logger.Warn("Close requested for already-closed book")
		return nil, ErrBookAlreadyClosed
	}

	// 1. Fetch the unarchived transactions inside the transaction so the
	// archived set and the computed balance see the same rows.
	transactions, err := s.txnRepo.FindUnarchivedByBookInTx(ctx, tx, req.BookID)
	if err != nil {
		logger.Error("Failed to fetch transactions for close", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch transactions for book %s: %w", req.BookID, err)
	}

	// 2. Net balance of the period. A book with no transactions closes
	// with a zero balance; that is a valid zero-effect close.
	balance := accounting.NetBalance(transactions)

	// 3. Archive using the same book_id + unarchived predicate as the fetch.
	archived, err := s.txnRepo.ArchiveBookTransactionsInTx(ctx, tx, req.BookID)
	if err != nil {
		logger.Error("Failed to archive transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to archive transactions for book %s: %w", req.BookID, err)
	}

	// 4. Seal the book.
	now := time.Now().UTC()
	if err := s.bookRepo.CloseBookInTx(ctx, tx, req.BookID, now); err != nil {
		logger.Error("Failed to close book", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to close book %s: %w", req.BookID, err)
	}

	// 5. Open the successor with a placeholder name; users rename it later.
	successor := domain.Book{
		BookID:    uuid.NewString(),
		Name:      fmt.Sprintf("New Book (%s)", now.Format("2006-01-02")),
		StartDate: now,
		CreatedAt: now,
	}
	if err := s.bookRepo.SaveBookInTx(ctx, tx, successor); err != nil {
		logger.Error("Failed to create successor book", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create successor book: %w", err)
	}

	// 6. Seed the successor with the carried balance, if any.
	if req.CarryForward && !balance.IsZero() {
		seed := domain.Transaction{
			TransactionID: uuid.NewString(),
			BookID:        successor.BookID,
			Amount:        balance,
			Description:   carryForwardDescription,
			Kind:          domain.Income,
			OccurredAt:    now,
			CreatedAt:     now,
		}
		if balance.IsNegative() {
			seed.Amount = balance.Abs()
			seed.Description = carryDeficitDescription
			seed.Kind = domain.Expense
		}
		if err := s.txnRepo.SaveTransactionInTx(ctx, tx, seed); err != nil {
			logger.Error("Failed to seed carried balance", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to seed carried balance: %w", err)
		}
	}

	if err := s.bookRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit close-book transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit close-book transaction: %w", err)
	}

	logger.Info("Book closed successfully",
		slog.String("new_book_id", successor.BookID),
		slog.String("balance", balance.String()),
		slog.Int64("transactions_archived", archived),
		slog.Bool("carry_forward", req.CarryForward),
	)

	return &dto.CloseBookResponse{
		Success:      true,
		Balance:      balance,
		ClosedBookID: req.BookID,
		NewBookID:    successor.BookID,
	}, nil
}
