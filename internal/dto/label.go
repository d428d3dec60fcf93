package dto

import (
	"time"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
)

// CreateLabelRequest defines the payload for creating a label.
type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateLabelRequest defines the payload for updating a label.
type UpdateLabelRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// LabelResponse defines the data returned for a label.
type LabelResponse struct {
	LabelID   string    `json:"labelID"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToLabelResponse converts a domain.Label to LabelResponse DTO.
func ToLabelResponse(l *domain.Label) LabelResponse {
	return LabelResponse{
		LabelID:   l.LabelID,
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
	}
}

// ToLabelResponses converts a slice of domain.Label to []LabelResponse.
func ToLabelResponses(labels []domain.Label) []LabelResponse {
	responses := make([]LabelResponse, len(labels))
	for i, l := range labels {
		responses[i] = ToLabelResponse(&l)
	}
	return responses
}
