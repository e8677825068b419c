package models

import "time"

// LoyaltyAccount is the per-client running balance.
// Invariant: CurrentCredits == TotalEarned - TotalSpent.
// TotalSpent here counts points, not crowns (that one lives on Client).
type LoyaltyAccount struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"uniqueIndex" json:"client_id"`

	CurrentCredits int `gorm:"default:0" json:"current_credits"`
	TotalEarned    int `gorm:"default:0" json:"total_earned"`
	TotalSpent     int `gorm:"default:0" json:"total_spent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	LoyaltyTxEarned = "earned"
	LoyaltyTxSpent  = "spent"
)

// LoyaltyTransaction is append-only; the account balance must be
// reconstructible from these rows.
type LoyaltyTransaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index" json:"client_id"`

	Amount      int    `gorm:"not null" json:"amount"`
	Type        string `gorm:"size:10;not null" json:"type"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
