package models

import "time"

const (
	JobPhotoKindBefore = "before"
	JobPhotoKindAfter  = "after"
)

// JobPhoto references a webp object stored in S3.
type JobPhoto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID    uint `gorm:"index" json:"booking_id"`
	TeamMemberID uint `json:"team_member_id"`

	Kind      string `gorm:"size:10;not null" json:"kind"`
	ObjectKey string `gorm:"size:255;not null" json:"object_key"`

	CreatedAt time.Time `json:"created_at"`
}
