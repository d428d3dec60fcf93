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
)

// PgxLabelRepository persists labels through a pgx connection pool.
type PgxLabelRepository struct {
	BaseRepository
}

// newPgxLabelRepository creates a new repository for label data.
func newPgxLabelRepository(pool *pgxpool.Pool) portsrepo.LabelRepositoryWithTx {
	return &PgxLabelRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LabelRepositoryWithTx = (*PgxLabelRepository)(nil)

// SaveLabel persists a new label.
func (r *PgxLabelRepository) SaveLabel(ctx context.Context, label domain.Label) error {
	query := `
		INSERT INTO labels (label_id, name, color, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		label.LabelID,
		label.Name,
		label.Color,
		label.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert label %s: %w", label.LabelID, err)
	}
	return nil
}

// FindLabelByID retrieves a label by its ID.
func (r *PgxLabelRepository) FindLabelByID(ctx context.Context, labelID string) (*domain.Label, error) {
	query := `SELECT label_id, name, color, created_at FROM labels WHERE label_id = $1;`
	var label domain.Label
	err := r.Pool.QueryRow(ctx, query, labelID).Scan(
		&label.LabelID,
		&label.Name,
		&label.Color,
		&label.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find label by ID %s: %w", labelID, err)
	}
	return &label, nil
}

// ListLabels retrieves all labels ordered by creation time, oldest first.
func (r *PgxLabelRepository) ListLabels(ctx context.Context) ([]domain.Label, error) {
	query := `SELECT label_id, name, color, created_at FROM labels ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", err)
	}
	defer rows.Close()

	labels := []domain.Label{}
	for rows.Next() {
		var label domain.Label
		if err := rows.Scan(
			&label.LabelID,
			&label.Name,
			&label.Color,
			&label.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan label row: %w", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating label rows: %w", err)
	}

	return labels, nil
}

// UpdateLabel updates a label's name and color.
func (r *PgxLabelRepository) UpdateLabel(ctx context.Context, label domain.Label) error {
	query := `UPDATE labels SET name = $1, color = $2 WHERE label_id = $3;`
	tag, err := r.Pool.Exec(ctx, query, label.Name, label.Color, label.LabelID)
	if err != nil {
		return fmt.Errorf("failed to update label %s: %w", label.LabelID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLabelInTx removes the label row within the given transaction.
func (r *PgxLabelRepository) DeleteLabelInTx(ctx context.Context, tx pgx.Tx, labelID string) error {
	query := `DELETE FROM labels WHERE label_id = $1;`
	tag, err := tx.Exec(ctx, query, labelID)
	if err != nil {
		return fmt.Errorf("failed to delete label %s: %w", labelID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
