package services

import (
	"context"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
)

// ReportingSvcFacade defines read-only aggregate views over a book.
type ReportingSvcFacade interface {
	// BookSummary returns income/expense totals and a per-label expense
	// breakdown for the unarchived transactions of a book.
	BookSummary(ctx context.Context, bookID string) (*domain.BookSummary, error)
}
