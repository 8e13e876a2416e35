package main

import (
	"context"
	"fmt"
	"os"

	"mcq-quiz/internal/config"
	"mcq-quiz/internal/database"
	"mcq-quiz/internal/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	direction := pflag.String("direction", database.DirectionUp, "migration direction: up or down")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get().With(zap.String("driver", cfg.DB.Driver), zap.String("direction", *direction))

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db.DB, cfg.DB.Driver, *direction); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Migrations applied")
}
