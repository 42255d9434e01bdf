package models

// User is an account that can organize schedules and answer them.
// Identity fields only; authorization lives in the services.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}
