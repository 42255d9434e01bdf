package main

import (
	"flag"

	"go.uber.org/zap"

	"yotei.link/configs"
	"yotei.link/configs/configslog"
	"yotei.link/database"
)

// Standalone migration runner: go run ./database/cmd -migrate -seed
func main() {
	migrate := flag.Bool("migrate", false, "run schema migrations")
	seed := flag.Bool("seed", false, "run seeders")
	flag.Parse()

	configs.LoadEnv()
	cfg := configs.GetAppConfig()
	configslog.InitLogger(cfg.AppEnv)
	defer configslog.Sync()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		configslog.Log.Fatal("Could not connect to database", zap.Error(err))
	}

	if err := database.Initialize(db, *migrate, *seed); err != nil {
		configslog.Log.Fatal("Database initialization failed", zap.Error(err))
	}
}
