package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"yotei.link/configs"
	"yotei.link/configs/configslog"
	"yotei.link/database"
	"yotei.link/routes"
)

func main() {
	configs.LoadEnv()
	cfg := configs.GetAppConfig()
	configslog.InitLogger(cfg.AppEnv)
	defer configslog.Sync()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		configslog.Log.Fatal("Could not connect to database", zap.Error(err))
	}
	if err := database.Initialize(db, true, cfg.AppEnv != "production"); err != nil {
		configslog.Log.Fatal("Database initialization failed", zap.Error(err))
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: false,
	})

	app.Static("/static", "./static")
	routes.SetupRoutes(app)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		configslog.SLog.Info("Shutting down...")
		_ = app.Shutdown()
	}()

	configslog.SLog.Infow("Server starting", "addr", cfg.ListenAddr, "env", cfg.AppEnv)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
