package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
)

// reportingService implements read-only aggregate views over books.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	bookRepo      portsrepo.BookRepositoryWithTx
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, bookRepo portsrepo.BookRepositoryWithTx) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		bookRepo:      bookRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// BookSummary returns income/expense totals and a per-label expense
// breakdown for the unarchived transactions of a book.
func (s *reportingService) BookSummary(ctx context.Context, bookID string) (*domain.BookSummary, error) {
	if _, err := s.bookRepo.FindBookByID(ctx, bookID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to verify book for summary", slog.String("book_id", bookID))
		}
		return nil, err
	}

	summary, err := s.reportingRepo.GetBookSummary(ctx, bookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate book summary", slog.String("book_id", bookID))
		return nil, fmt.Errorf("failed to aggregate summary for book %s: %w", bookID, err)
	}

	s.LogDebug(ctx, "Book summary computed",
		slog.String("book_id", bookID),
		slog.Int("transaction_count", summary.TransactionCount))
	return summary, nil
}
