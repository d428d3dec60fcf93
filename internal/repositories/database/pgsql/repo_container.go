package pgsql

import (
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BookRepo:        newPgxBookRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		LabelRepo:       newPgxLabelRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
