package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, book_id, label_id, amount, description, kind, occurred_at, archived, created_at`

// PgxTransactionRepository persists transactions through a pgx connection pool.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var amount decimal.Decimal

	err := row.Scan(
		&txn.TransactionID,
		&txn.BookID,
		&txn.LabelID,
		&amount,
		&txn.Description,
		&txn.Kind,
		&txn.OccurredAt,
		&txn.Archived,
		&txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	txn.Amount = amount
	return &txn, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.BookID,
		txn.LabelID,
		txn.Amount,
		txn.Description,
		txn.Kind,
		txn.OccurredAt,
		txn.Archived,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves transactions matching the filter, ordered by
// occurrence timestamp descending.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	conditions := ""
	args := []any{}

	if !filter.IncludeArchived {
		conditions = ` WHERE archived = FALSE`
	}
	if filter.BookID != nil {
		args = append(args, *filter.BookID)
		if conditions == "" {
			conditions = ` WHERE book_id = $1`
		} else {
			conditions += ` AND book_id = $1`
		}
	}
	query += conditions + ` ORDER BY occurred_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return collectTransactions(rows)
}

// UpdateTransaction updates the mutable fields of a transaction. Book
// ownership and the archived flag are deliberately absent from the
// statement.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, description = $2, occurred_at = $3, kind = $4, label_id = $5
		WHERE transaction_id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.Amount,
		txn.Description,
		txn.OccurredAt,
		txn.Kind,
		txn.LabelID,
		txn.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindUnarchivedByBookInTx fetches the unarchived transactions of a book
// within the given transaction.
func (r *PgxTransactionRepository) FindUnarchivedByBookInTx(ctx context.Context, tx pgx.Tx, bookID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE book_id = $1 AND archived = FALSE
		ORDER BY occurred_at DESC;
	`
	rows, err := tx.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unarchived transactions for book %s: %w", bookID, err)
	}
	return collectTransactions(rows)
}

// ArchiveBookTransactionsInTx marks every unarchived transaction of the
// book as archived. The predicate matches FindUnarchivedByBookInTx exactly.
func (r *PgxTransactionRepository) ArchiveBookTransactionsInTx(ctx context.Context, tx pgx.Tx, bookID string) (int64, error) {
	query := `UPDATE transactions SET archived = TRUE WHERE book_id = $1 AND archived = FALSE;`
	tag, err := tx.Exec(ctx, query, bookID)
	if err != nil {
		return 0, fmt.Errorf("failed to archive transactions for book %s: %w", bookID, err)
	}
	return tag.RowsAffected(), nil
}

// SaveTransactionInTx persists a new transaction within the given transaction.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.BookID,
		txn.LabelID,
		txn.Amount,
		txn.Description,
		txn.Kind,
		txn.OccurredAt,
		txn.Archived,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// DeleteByBookInTx removes all transactions owned by the book.
func (r *PgxTransactionRepository) DeleteByBookInTx(ctx context.Context, tx pgx.Tx, bookID string) (int64, error) {
	query := `DELETE FROM transactions WHERE book_id = $1;`
	tag, err := tx.Exec(ctx, query, bookID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions for book %s: %w", bookID, err)
	}
	return tag.RowsAffected(), nil
}

// DetachLabelInTx nulls the label reference on every transaction that
// references the label.
func (r *PgxTransactionRepository) DetachLabelInTx(ctx context.Context, tx pgx.Tx, labelID string) (int64, error) {
	query := `UPDATE transactions SET label_id = NULL WHERE label_id = $1;`
	tag, err := tx.Exec(ctx, query, labelID)
	if err != nil {
		return 0, fmt.Errorf("failed to detach label %s: %w", labelID, err)
	}
	return tag.RowsAffected(), nil
}
