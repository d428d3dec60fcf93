package pgsql

import (
	"context"
	"fmt"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository runs read-only aggregation queries for summaries.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetBookSummary aggregates the unarchived transactions of a book.
func (r *reportingRepository) GetBookSummary(ctx context.Context, bookID string) (*domain.BookSummary, error) {
	summary := &domain.BookSummary{
		BookID:       bookID,
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
		Net:          decimal.Zero,
		Labels:       []domain.LabelSummary{},
	}

	totalsQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0),
			COUNT(*)
		FROM transactions
		WHERE book_id = $1 AND archived = FALSE;
	`
	err := r.Pool.QueryRow(ctx, totalsQuery, bookID).Scan(
		&summary.IncomeTotal,
		&summary.ExpenseTotal,
		&summary.TransactionCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate totals for book %s: %w", bookID, err)
	}
	summary.Net = summary.IncomeTotal.Sub(summary.ExpenseTotal)

	breakdownQuery := `
		SELECT
			COALESCE(l.label_id::text, ''),
			COALESCE(l.name, 'Unlabeled'),
			COALESCE(l.color, ''),
			SUM(t.amount),
			COUNT(*)
		FROM transactions t
		LEFT JOIN labels l ON l.label_id = t.label_id
		WHERE t.book_id = $1 AND t.archived = FALSE AND t.kind = 'expense'
		GROUP BY l.label_id, l.name, l.color
		ORDER BY SUM(t.amount) DESC;
	`
	rows, err := r.Pool.Query(ctx, breakdownQuery, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate label breakdown for book %s: %w", bookID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row domain.LabelSummary
		if err := rows.Scan(
			&row.LabelID,
			&row.Name,
			&row.Color,
			&row.ExpenseTotal,
			&row.TransactionCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan label breakdown row: %w", err)
		}
		summary.Labels = append(summary.Labels, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating label breakdown rows: %w", err)
	}

	return summary, nil
}
