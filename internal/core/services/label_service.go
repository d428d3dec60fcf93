package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
	"github.com/firmanw/ledger_books_app/internal/dto"
)

// labelService implements the label registry.
type labelService struct {
	BaseService
	labelRepo portsrepo.LabelRepositoryWithTx
	txnRepo   portsrepo.TransactionRepositoryWithTx
}

// NewLabelService creates a new label registry service.
func NewLabelService(labelRepo portsrepo.LabelRepositoryWithTx, txnRepo portsrepo.TransactionRepositoryWithTx) portssvc.LabelSvcFacade {
	return &labelService{
		labelRepo: labelRepo,
		txnRepo:   txnRepo,
	}
}

var _ portssvc.LabelSvcFacade = (*labelService)(nil)

// ListLabels retrieves all labels, oldest first.
func (s *labelService) ListLabels(ctx context.Context) ([]domain.Label, error) {
	labels, err := s.labelRepo.ListLabels(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list labels")
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

// CreateLabel creates a label; color defaults when omitted.
func (s *labelService) CreateLabel(ctx context.Context, req dto.CreateLabelRequest) (*domain.Label, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: label name is required", apperrors.ErrValidation)
	}

	color := req.Color
	if color == "" {
		color = domain.DefaultLabelColor
	}

	label := domain.Label{
		LabelID:   uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.labelRepo.SaveLabel(ctx, label); err != nil {
		s.LogError(ctx, err, "Failed to save label")
		return nil, fmt.Errorf("failed to save label: %w", err)
	}

	s.LogInfo(ctx, "Label created successfully", slog.String("label_id", label.LabelID))
	return &label, nil
}

// UpdateLabel updates a label's name and color.
func (s *labelService) UpdateLabel(ctx context.Context, labelID string, req dto.UpdateLabelRequest) (*domain.Label, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: label name is required", apperrors.ErrValidation)
	}

	existing, err := s.labelRepo.FindLabelByID(ctx, labelID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find label for update", slog.String("label_id", labelID))
		}
		return nil, err
	}

	existing.Name = name
	existing.Color = req.Color
	if existing.Color == "" {
		existing.Color = domain.DefaultLabelColor
	}

	if err := s.labelRepo.UpdateLabel(ctx, *existing); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update label", slog.String("label_id", labelID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Label updated successfully", slog.String("label_id", labelID))
	return existing, nil
}

// DeleteLabel removes a label. Referencing transactions are detached
// first (label reference nulled out) in the same transaction, so no
// transaction is ever deleted or left pointing at a missing label.
func (s *labelService) DeleteLabel(ctx context.Context, labelID string) error {
	tx, err := s.labelRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction for label delete", slog.String("label_id", labelID))
		return fmt.Errorf("failed to begin label delete: %w", err)
	}
	defer func() {
		_ = s.labelRepo.Rollback(ctx, tx)
	}()

	detached, err := s.txnRepo.DetachLabelInTx(ctx, tx, labelID)
	if err != nil {
		s.LogError(ctx, err, "Failed to detach label from transactions", slog.String("label_id", labelID))
		return fmt.Errorf("failed to detach label %s: %w", labelID, err)
	}

	if err := s.labelRepo.DeleteLabelInTx(ctx, tx, labelID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete label", slog.String("label_id", labelID))
		}
		return err
	}

	if err := s.labelRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit label delete", slog.String("label_id", labelID))
		return fmt.Errorf("failed to commit label delete: %w", err)
	}

	s.LogInfo(ctx, "Label deleted successfully",
		slog.String("label_id", labelID),
		slog.Int64("transactions_detached", detached))
	return nil
}
