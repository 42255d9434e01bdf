package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs/configslog"
	"yotei.link/models"
)

// MigrateCommentsTable creates/updates the comments table with its
// (schedule, user) unique index.
func MigrateCommentsTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Comment{}); err != nil {
		configslog.Log.Error("Failed to migrate comments table", zap.Error(err))
		return err
	}
	return nil
}
