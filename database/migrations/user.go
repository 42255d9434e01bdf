package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs/configslog"
	"yotei.link/models"
)

// MigrateUsersTable creates/updates the users table. Runs first; every
// other table references it.
func MigrateUsersTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		configslog.Log.Error("Failed to migrate users table", zap.Error(err))
		return err
	}
	return nil
}
