package models

import "time"

// BaseModel is embedded by the auto-increment entities. Schedule keys on a
// uuid string and defines its own columns instead.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"type:timestamptz"`
	UpdatedAt time.Time `gorm:"type:timestamptz"`
}
