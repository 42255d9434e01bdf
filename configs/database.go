package configs

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"yotei.link/configs/configslog"
)

var db *gorm.DB

// ConnectDB opens the Postgres connection and stores the handle for
// GetDB. Call once from main before anything touches the store.
func ConnectDB(cfg AppConfig) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.AppEnv != "production" {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		configslog.Log.Error("Failed to connect to database", zap.Error(err))
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Info("Database connection established")
	return conn, nil
}

// GetDB returns the shared *gorm.DB. Panics when ConnectDB has not run;
// that is a wiring bug, not a runtime condition.
func GetDB() *gorm.DB {
	if db == nil {
		panic("configs: GetDB called before ConnectDB")
	}
	return db
}
