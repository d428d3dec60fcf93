package domain

import "github.com/shopspring/decimal"

// BookSummary aggregates the unarchived transactions of a single book.
type BookSummary struct {
	BookID           string          `json:"bookID"`
	IncomeTotal      decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal     decimal.Decimal `json:"expenseTotal"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transactionCount"`
	Labels           []LabelSummary  `json:"labels"`
}

// LabelSummary is one row of a book's per-label expense breakdown.
// Transactions without a label are reported under an empty LabelID.
type LabelSummary struct {
	LabelID          string          `json:"labelID"`
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	ExpenseTotal     decimal.Decimal `json:"expenseTotal"`
	TransactionCount int             `json:"transactionCount"`
}
