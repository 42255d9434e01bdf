package models

import "time"

// Limits applied to organizer-supplied text, in runes. Longer input is
// truncated, never rejected.
const (
	ScheduleNameMaxLen = 255
	ScheduleMemoMaxLen = 1000
)

// UntitledScheduleName is stored when the organizer submits an empty name.
const UntitledScheduleName = "(untitled)"

// Schedule is an event proposal: a name, a memo and an owning user. Its
// candidates, availabilities and comments hang off ScheduleID and are
// removed together with it.
type Schedule struct {
	ScheduleID   string    `gorm:"type:uuid;primaryKey"`
	ScheduleName string    `gorm:"type:varchar(255);not null"`
	Memo         string    `gorm:"type:text;not null"`
	CreatedBy    uint      `gorm:"index;not null"`
	CreatedAt    time.Time `gorm:"type:timestamptz"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;index"`

	Creator User `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
