package services

import (
	"context"

	"github.com/firmanw/ledger_books_app/internal/dto"
)

// BookLifecycleSvcFacade exposes the close-and-carry-forward workflow.
type BookLifecycleSvcFacade interface {
	// CloseBook atomically archives a book's unarchived transactions, seals
	// the book, opens a successor book and, when requested, seeds the
	// successor with the closed book's net balance. Either every step takes
	// effect or none do.
	CloseBook(ctx context.Context, req dto.CloseBookRequest) (*dto.CloseBookResponse, error)
}
