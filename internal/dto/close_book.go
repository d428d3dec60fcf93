package dto

import "github.com/shopspring/decimal"

// CloseBookRequest defines the payload for the close-book operation.
type CloseBookRequest struct {
	BookID       string `json:"bookID" binding:"required"`
	CarryForward bool   `json:"carryForward"`
}

// CloseBookResponse is the result of a successful close-book operation.
// Balance is the exact net balance of the closed book; NewBookID
// identifies the successor book opened by the close.
type CloseBookResponse struct {
	Success      bool            `json:"success"`
	Balance      decimal.Decimal `json:"balance"`
	ClosedBookID string          `json:"closedBookID"`
	NewBookID    string          `json:"newBookID"`
}
