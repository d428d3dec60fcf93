package domain

import "time"

// Book represents a bounded ledger period that groups transactions.
// A book is open while EndDate is nil; the close operation is the only
// thing that sets EndDate.
type Book struct {
	BookID    string     `json:"bookID"`    // Primary Key (UUID)
	Name      string     `json:"name"`      // Non-empty display name
	StartDate time.Time  `json:"startDate"` // When the period began
	EndDate   *time.Time `json:"endDate"`   // Nil while the book is open
	CreatedAt time.Time  `json:"createdAt"`
}

// IsOpen reports whether the book has not been closed yet.
func (b Book) IsOpen() bool {
	return b.EndDate == nil
}
