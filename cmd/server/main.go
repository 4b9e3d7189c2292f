package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/Ragi-1016/Geektwitter/internal/config"
	"github.com/Ragi-1016/Geektwitter/internal/database"
	"github.com/Ragi-1016/Geektwitter/internal/routes"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	var db *database.Database
	switch {
	case cfg.Database.Primary.Enable:
		db = database.InitWithFallback(logger,
			cfg.Database.Primary.Driver, cfg.Database.Primary.DSN,
			cfg.Database.Fallback.Driver, cfg.Database.Fallback.DSN)
	case cfg.Database.Fallback.Enable:
		db = database.InitWithFallback(logger,
			cfg.Database.Fallback.Driver, cfg.Database.Fallback.DSN,
			"", "")
	default:
		logger.Warn("every database connection is disabled, running on in-memory sqlite")
		db = database.InitWithFallback(logger, "sqlite", ":memory:", "", "")
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close failed", zap.Error(err))
		}
	}()

	logger.Info("database ready", zap.Any("info", db.GetInfo()))

	router := routes.SetupRoutes(db.DB, cfg, logger)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
