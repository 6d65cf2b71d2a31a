package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hotel-booking/engine/internal/migrations"
	"github.com/hotel-booking/engine/pkg/config"
	"github.com/hotel-booking/engine/pkg/database"
	"github.com/hotel-booking/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.OpenPostgres(context.Background(), cfg.DSN(), log, database.DefaultOptions(cfg.AppEnv))
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := migrations.Run(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
