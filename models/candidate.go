package models

// Candidate is one proposed time slot of a schedule. Display order is
// CandidateID ascending, i.e. insertion order. Names are free text and may
// repeat within a schedule.
type Candidate struct {
	CandidateID   uint   `gorm:"primaryKey"`
	CandidateName string `gorm:"type:varchar(255);not null"`
	ScheduleID    string `gorm:"type:uuid;index;not null"`
}
