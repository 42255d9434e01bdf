package models

// Comment is a user's free-text note on a schedule. One row per
// (schedule, user); a later submission replaces the earlier one.
type Comment struct {
	BaseModel
	ScheduleID string `gorm:"type:uuid;not null;uniqueIndex:idx_comment_schedule_user"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_comment_schedule_user"`
	Comment    string `gorm:"type:text;not null"`
}
