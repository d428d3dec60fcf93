package dto

import (
	"time"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
)

// CreateBookRequest defines the payload for creating a book.
type CreateBookRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateBookRequest defines the payload for renaming a book.
type UpdateBookRequest struct {
	Name string `json:"name" binding:"required"`
}

// BookResponse defines the data returned for a book.
type BookResponse struct {
	BookID    string     `json:"bookID"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ListBooksResponse wraps a list of books.
type ListBooksResponse struct {
	Books []BookResponse `json:"books"`
}

// ToBookResponse converts a domain.Book to BookResponse DTO.
func ToBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		BookID:    b.BookID,
		Name:      b.Name,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
	}
}

// ToBookResponses converts a slice of domain.Book to []BookResponse.
func ToBookResponses(books []domain.Book) []BookResponse {
	responses := make([]BookResponse, len(books))
	for i, b := range books {
		responses[i] = ToBookResponse(&b)
	}
	return responses
}
