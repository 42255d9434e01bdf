package models

// Availability codes. A missing row reads as AvailabilityAbsent; the
// aggregation layer fills that default in so views never see a hole.
const (
	AvailabilityAbsent  = 0
	AvailabilityMaybe   = 1
	AvailabilityPresent = 2
)

// Availability is one user's answer for one candidate slot. One logical
// row per (schedule, candidate, user); writes go through an upsert.
type Availability struct {
	BaseModel
	ScheduleID   string `gorm:"type:uuid;not null;index;uniqueIndex:idx_availability_slot_user"`
	CandidateID  uint   `gorm:"not null;uniqueIndex:idx_availability_slot_user"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_availability_slot_user"`
	Availability int    `gorm:"not null;default:0"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// ValidAvailability reports whether code is one of the three known states.
func ValidAvailability(code int) bool {
	return code == AvailabilityAbsent || code == AvailabilityMaybe || code == AvailabilityPresent
}
