package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is an expense or an income.
type TransactionKind string

const (
	Expense TransactionKind = "expense"
	Income  TransactionKind = "income"
)

// Transaction is a single income or expense entry owned by exactly one book.
// Amount is always positive; the sign of its contribution to a book's
// balance is determined solely by Kind.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	BookID        string          `json:"bookID"`        // FK -> Book.bookID (Not Null)
	LabelID       *string         `json:"labelID"`       // FK -> Label.labelID (Nullable)
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	Description   string          `json:"description"`   // Non-empty
	Kind          TransactionKind `json:"kind"`          // expense or income
	OccurredAt    time.Time       `json:"occurredAt"`    // User-supplied, defaults to creation time
	Archived      bool            `json:"archived"`      // Set only by the close-book operation
	CreatedAt     time.Time       `json:"createdAt"`
}
