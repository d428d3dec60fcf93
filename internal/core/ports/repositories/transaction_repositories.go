package repositories

import (
	"context"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ListTransactionsFilter scopes a transaction listing. A nil BookID means
// all books (legacy fallback mode); archived entries are excluded unless
// IncludeArchived is set.
type ListTransactionsFilter struct {
	BookID          *string
	IncludeArchived bool
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, ordered by
	// occurrence timestamp descending.
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates the mutable fields of a transaction
	// (amount, description, occurrence time, kind, label). Returns
	// apperrors.ErrNotFound if no row matched.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound
	// if no row matched.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionTxOperations defines transaction-table statements that run
// inside a caller-owned database transaction.
type TransactionTxOperations interface {
	// FindUnarchivedByBookInTx fetches the unarchived transactions of a book
	// within the given transaction.
	FindUnarchivedByBookInTx(ctx context.Context, tx pgx.Tx, bookID string) ([]domain.Transaction, error)

	// ArchiveBookTransactionsInTx marks every unarchived transaction of the
	// book as archived and returns the number of rows affected. The update
	// uses the same book_id + unarchived predicate as the fetch so a
	// concurrent add cannot be half-archived.
	ArchiveBookTransactionsInTx(ctx context.Context, tx pgx.Tx, bookID string) (int64, error)

	// SaveTransactionInTx persists a new transaction within the given transaction.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// DeleteByBookInTx removes all transactions owned by the book and
	// returns the number of rows deleted.
	DeleteByBookInTx(ctx context.Context, tx pgx.Tx, bookID string) (int64, error)

	// DetachLabelInTx nulls the label reference on every transaction that
	// references the label and returns the number of rows affected.
	DetachLabelInTx(ctx context.Context, tx pgx.Tx, labelID string) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionTxOperations
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
