package services

import (
	"context"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	"github.com/firmanw/ledger_books_app/internal/dto"
)

// TransactionReaderSvc defines read operations on transactions
type TransactionReaderSvc interface {
	// ListTransactions retrieves transactions, optionally scoped to a book,
	// ordered by occurrence timestamp descending. Archived transactions are
	// excluded unless explicitly requested.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations on transactions
type TransactionWriterSvc interface {
	// CreateTransaction records a new income or expense entry in a book.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction edits a transaction's amount, description,
	// occurrence time, kind or label. Book ownership and the archived flag
	// are never editable.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction operations
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
