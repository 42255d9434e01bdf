package configs

import (
	"os"

	"github.com/joho/godotenv"

	"yotei.link/configs/configslog"
)

// AppConfig holds the environment-driven settings the server needs at boot.
type AppConfig struct {
	AppEnv      string
	ListenAddr  string
	DatabaseURL string
}

// LoadEnv reads .env if present. Missing .env is fine; real deployments
// set the environment directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if configslog.SLog != nil {
			configslog.SLog.Info("No .env file found, relying on process environment")
		}
	}
}

// GetAppConfig assembles the AppConfig from the environment with defaults
// suitable for local development.
func GetAppConfig() AppConfig {
	return AppConfig{
		AppEnv:      getEnv("APP_ENV", "development"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost/scheduler?sslmode=disable"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
