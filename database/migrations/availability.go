package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs/configslog"
	"yotei.link/models"
)

// MigrateAvailabilitiesTable creates/updates the availabilities table,
// including the (schedule, candidate, user) unique index the upsert path
// relies on.
func MigrateAvailabilitiesTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Availability{}); err != nil {
		configslog.Log.Error("Failed to migrate availabilities table", zap.Error(err))
		return err
	}
	return nil
}
