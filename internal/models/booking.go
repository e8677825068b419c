package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Public reference handed to the client on intake.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ScheduledAt *time.Time `json:"scheduled_at"`

	// Lead authority: explicit override, otherwise the first assignment.
	LeadCleanerID *uint `json:"lead_cleaner_id"`

	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CancelledAt    *time.Time `json:"cancelled_at"`
	ClientViewedAt *time.Time `json:"client_viewed_at"`

	// JSON blob: service category, attributes, quote, operator price, notes.
	Details string `gorm:"type:text" json:"details"`

	InvoiceID *uint `json:"invoice_id"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingAssignment keeps the ordered crew of a booking. Position 0 is the
// lead unless Booking.LeadCleanerID overrides it.
type BookingAssignment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint `gorm:"index:idx_booking_position,priority:1" json:"booking_id"`

	TeamMemberID uint       `json:"team_member_id"`
	TeamMember   TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"team_member"`

	Position int `gorm:"index:idx_booking_position,priority:2" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}
