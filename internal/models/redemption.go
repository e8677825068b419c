package models

import "time"

const (
	RedemptionStatusPending   = "pending"
	RedemptionStatusFulfilled = "fulfilled"
	RedemptionStatusCancelled = "cancelled"
)

// RedemptionRequest does not reserve points while pending; the balance is
// only checked and decremented on fulfillment.
type RedemptionRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index" json:"client_id"`

	PrizeName  string `gorm:"size:100;not null" json:"prize_name"`
	PointsCost int    `gorm:"not null" json:"points_cost"`

	Status     string     `gorm:"size:20;default:'pending'" json:"status"`
	ResolvedAt *time.Time `json:"resolved_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
