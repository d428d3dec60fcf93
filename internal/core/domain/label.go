package domain

import "time"

// DefaultLabelColor is used when a label is created or updated without
// an explicit color.
const DefaultLabelColor = "#a1a1aa"

// Label is a user-defined tag categorizing transactions. Labels are
// independent of books; transactions reference them weakly.
type Label struct {
	LabelID   string    `json:"labelID"` // Primary Key (UUID)
	Name      string    `json:"name"`    // Non-empty
	Color     string    `json:"color"`   // Display hex value
	CreatedAt time.Time `json:"createdAt"`
}
