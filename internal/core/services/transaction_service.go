package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
	"github.com/firmanw/ledger_books_app/internal/dto"
	"github.com/firmanw/ledger_books_app/internal/utils/accounting"
)

// transactionService implements transaction CRUD and filtered listing.
type transactionService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepositoryWithTx
	bookRepo portsrepo.BookRepositoryWithTx
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWithTx, bookRepo portsrepo.BookRepositoryWithTx) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:  txnRepo,
		bookRepo: bookRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// ListTransactions retrieves transactions, optionally scoped to a book,
// ordered by occurrence timestamp descending.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.ListTransactionsFilter{
		BookID:          params.BookID,
		IncludeArchived: params.IncludeArchived,
	}
	transactions, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// CreateTransaction records a new income or expense entry in a book.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	// The owning book must exist; a dangling bookID is caller error, not
	// a missing-resource condition on this endpoint.
	if _, err := s.bookRepo.FindBookByID(ctx, req.BookID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: book %s does not exist", apperrors.ErrValidation, req.BookID)
		}
		s.LogError(ctx, err, "Failed to verify book for transaction create", slog.String("book_id", req.BookID))
		return nil, fmt.Errorf("failed to verify book %s: %w", req.BookID, err)
	}

	now := time.Now().UTC()
	occurredAt := now
	if req.Date != nil {
		occurredAt = req.Date.UTC()
	}
	kind := req.Kind
	if kind == "" {
		kind = domain.Expense
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		BookID:        req.BookID,
		LabelID:       req.LabelID,
		Amount:        accounting.NormalizeAmount(req.Amount),
		Description:   req.Description,
		Kind:          kind,
		OccurredAt:    occurredAt,
		CreatedAt:     now,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("book_id", req.BookID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("book_id", txn.BookID),
		slog.String("kind", string(txn.Kind)))
	return &txn, nil
}

// UpdateTransaction edits a transaction's amount, description, occurrence
// time, kind or label. Book ownership and the archived flag never change
// through this path.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction for update", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	existing.Amount = accounting.NormalizeAmount(req.Amount)
	existing.Description = req.Description
	existing.LabelID = req.LabelID
	if req.Date != nil {
		existing.OccurredAt = req.Date.UTC()
	}
	if req.Kind != "" {
		existing.Kind = req.Kind
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *existing); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return existing, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted successfully", slog.String("transaction_id", transactionID))
	return nil
}
