package models

import "time"

// Client has no login; bookings are taken by phone/web intake.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20;index" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	// Lifetime crowns spent on services. Not the loyalty ledger's
	// TotalSpent, which counts points.
	TotalSpent float64 `gorm:"default:0" json:"total_spent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
