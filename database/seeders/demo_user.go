package seeders

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yotei.link/configs/configslog"
	"yotei.link/models"
)

// SeedDemoUser creates a local demo account when it does not exist yet.
// Development convenience only; Initialize runs it behind the seed flag.
func SeedDemoUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("username = ?", "demo").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{Username: "demo", PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Failed to seed demo user", zap.Error(err))
		return err
	}
	configslog.SLog.Infow("Demo user seeded", "userID", user.ID)
	return nil
}
