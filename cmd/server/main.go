// @title        Bank Client API
// @version      1.0
// @description  Record-management backend for bank-client profiles with an external user directory proxy.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bankcore/bank-client-api/internal/api"
	"github.com/bankcore/bank-client-api/internal/infrastructure/config"
	gormdb "github.com/bankcore/bank-client-api/internal/infrastructure/db/gorm"
	"github.com/bankcore/bank-client-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	db, err := gormdb.Connect(cfg.Database.DSN, cfg.Database.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := gormdb.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("database seed failed")
	}

	e := api.NewRouter(db, cfg)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}
