package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs/configslog"
	"yotei.link/models"
)

// MigrateCandidatesTable creates/updates the candidates table.
func MigrateCandidatesTable(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Candidate{}); err != nil {
		configslog.Log.Error("Failed to migrate candidates table", zap.Error(err))
		return err
	}
	return nil
}
