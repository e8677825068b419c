package models

import "time"

// ChecklistRoom is a per-room completion marker. A booking can only be
// completed once every room of its checklist is done.
type ChecklistRoom struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index" json:"booking_id"`

	Name   string     `gorm:"size:100;not null" json:"name"`
	Done   bool       `gorm:"default:false" json:"done"`
	DoneAt *time.Time `json:"done_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
