package services

import (
	"context"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	"github.com/firmanw/ledger_books_app/internal/dto"
)

// LabelSvcFacade defines the label registry operations.
type LabelSvcFacade interface {
	// ListLabels retrieves all labels, oldest first.
	ListLabels(ctx context.Context) ([]domain.Label, error)

	// CreateLabel creates a label; color defaults when omitted.
	CreateLabel(ctx context.Context, req dto.CreateLabelRequest) (*domain.Label, error)

	// UpdateLabel updates a label's name and color.
	UpdateLabel(ctx context.Context, labelID string, req dto.UpdateLabelRequest) (*domain.Label, error)

	// DeleteLabel removes a label, detaching referencing transactions first.
	DeleteLabel(ctx context.Context, labelID string) error
}
