package models

import "time"

const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusIssued  = "issued"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BookingID *uint `json:"booking_id"`

	Status string  `gorm:"size:20;default:'draft'" json:"status"`
	Total  float64 `json:"total"`

	IssuedAt *time.Time `json:"issued_at"`
	DueDate  *time.Time `json:"due_date"`
	PaidAt   *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
