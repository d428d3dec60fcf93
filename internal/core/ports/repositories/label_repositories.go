package repositories

import (
	"context"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LabelReader defines read operations for label data
type LabelReader interface {
	// FindLabelByID retrieves a specific label by its unique identifier.
	FindLabelByID(ctx context.Context, labelID string) (*domain.Label, error)

	// ListLabels retrieves all labels ordered by creation time, oldest first.
	ListLabels(ctx context.Context) ([]domain.Label, error)
}

// LabelWriter defines write operations for label data
type LabelWriter interface {
	// SaveLabel persists a new label.
	SaveLabel(ctx context.Context, label domain.Label) error

	// UpdateLabel updates a label's name and color. Returns
	// apperrors.ErrNotFound if no row matched.
	UpdateLabel(ctx context.Context, label domain.Label) error

	// DeleteLabelInTx removes the label row within the given transaction,
	// after the caller has detached referencing transactions. Returns
	// apperrors.ErrNotFound if no row matched.
	DeleteLabelInTx(ctx context.Context, tx pgx.Tx, labelID string) error
}

// LabelRepositoryFacade combines all label-related repository interfaces
type LabelRepositoryFacade interface {
	LabelReader
	LabelWriter
}

// LabelRepositoryWithTx extends LabelRepositoryFacade with transaction capabilities
type LabelRepositoryWithTx interface {
	LabelRepositoryFacade
	TransactionManager
}
