package dto

import (
	"time"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a transaction.
// Kind defaults to expense and Date to the current time when omitted.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required,amountgt0"`
	Description string                 `json:"description" binding:"required"`
	Date        *time.Time             `json:"date"`
	Kind        domain.TransactionKind `json:"kind" binding:"omitempty,oneof=expense income"`
	BookID      string                 `json:"bookID" binding:"required"`
	LabelID     *string                `json:"labelID"`
}

// UpdateTransactionRequest defines the payload for editing a transaction.
// Book ownership and the archived flag are not editable.
type UpdateTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required,amountgt0"`
	Description string                 `json:"description" binding:"required"`
	Date        *time.Time             `json:"date"`
	Kind        domain.TransactionKind `json:"kind" binding:"omitempty,oneof=expense income"`
	LabelID     *string                `json:"labelID"`
}

// ListTransactionsParams holds the query parameters for listing transactions.
type ListTransactionsParams struct {
	BookID          *string `form:"bookId"`
	IncludeArchived bool    `form:"includeArchived"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	BookID        string          `json:"bookID"`
	LabelID       *string         `json:"labelID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Kind          string          `json:"kind"`
	Date          time.Time       `json:"date"`
	Archived      bool            `json:"archived"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		BookID:        txn.BookID,
		LabelID:       txn.LabelID,
		Amount:        txn.Amount,
		Description:   txn.Description,
		Kind:          string(txn.Kind),
		Date:          txn.OccurredAt,
		Archived:      txn.Archived,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
