package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"yotei.link/configs/configslog"
	"yotei.link/database/migrations"
	"yotei.link/database/seeders"
)

// Initialize runs the schema migrations and optional seeders inside one
// transaction, so a half-applied migration never commits.
func Initialize(db *gorm.DB, migrate, seed bool) error {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Running migrations...")
			if err := runMigrationsInOrder(tx); err != nil {
				return err
			}
			configslog.SLog.Info("Migrations complete")
		}
		if seed {
			configslog.SLog.Info("Running seeders...")
			if err := seeders.SeedDemoUser(tx); err != nil {
				return err
			}
			configslog.SLog.Info("Seeders complete")
		}
		return nil
	})
}

// runMigrationsInOrder applies the table migrations parent-first so every
// foreign key finds its target: users, schedules, then the three dependent
// record types.
func runMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"schedules", migrations.MigrateSchedulesTable},
		{"candidates", migrations.MigrateCandidatesTable},
		{"availabilities", migrations.MigrateAvailabilitiesTable},
		{"comments", migrations.MigrateCommentsTable},
	}
	for _, step := range steps {
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migration step failed", zap.String("step", step.name), zap.Error(err))
			return err
		}
	}
	return nil
}
