package repositories

import (
	"context"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregation queries used by the
// reporting service.
type ReportingRepository interface {
	// GetBookSummary aggregates the unarchived transactions of a book:
	// income/expense totals plus a per-label expense breakdown.
	GetBookSummary(ctx context.Context, bookID string) (*domain.BookSummary, error)
}
