package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs/configslog"
	"yotei.link/models"
)

// MigrateSchedulesTable creates/updates the schedules table. Users must
// already exist for the creator FK.
func MigrateSchedulesTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Schedule{}); err != nil {
		configslog.Log.Error("Failed to migrate schedules table", zap.Error(err))
		return err
	}
	return nil
}
