package main

import (
	"context"
	"fmt"
	"os"

	"mcq-quiz/internal/adapter"
	"mcq-quiz/internal/cache"
	"mcq-quiz/internal/config"
	"mcq-quiz/internal/database"
	"mcq-quiz/internal/domain"
	"mcq-quiz/internal/importer"
	"mcq-quiz/internal/logger"
	"mcq-quiz/internal/repository"
	"mcq-quiz/internal/service"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	subject := pflag.String("subject", "", "subject of the question file")
	level := pflag.String("level", "", "level of the question file")
	file := pflag.String("file", "", "question file, relative to the data directory")
	pflag.String("data-dir", "", "directory holding question files (overrides importer.data_dir)")
	pflag.Parse()

	if f := pflag.Lookup("data-dir"); f.Changed {
		_ = viper.BindPFlag("importer.data_dir", f)
	}

	ctx := context.Background()
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
	log := logger.Get()

	jobs, err := importer.Jobs(cfg.Importer, *subject, *level, *file)
	if err != nil {
		log.Fatal("Nothing to import", zap.Error(err))
	}

	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// The listing cache is only invalidated when Redis is reachable.
	var c domain.Cache
	if redisClient, err := cache.NewRedisClient(ctx, cfg.Redis); err != nil {
		log.Warn("Redis unavailable, subject level cache will expire on its own", zap.Error(err))
	} else {
		defer redisClient.Close()
		c = adapter.NewRedisCacheAdapter(redisClient)
	}

	importService := service.NewImportService(
		repository.NewQuestionRepository(db),
		repository.NewTransactionManagerAdapter(db),
		c,
	)

	failed := false
	for _, job := range jobs {
		jobLog := log.With(zap.String("subject", job.Subject), zap.String("level", job.Level), zap.String("path", job.Path))
		records, err := importer.LoadRecords(job.Path)
		if err != nil {
			jobLog.Error("Failed to load question file", zap.Error(err))
			failed = true
			continue
		}
		report, err := importService.ImportQuestions(ctx, job.Subject, job.Level, records)
		if err != nil {
			jobLog.Error("Import failed, transaction rolled back", zap.Error(err))
			failed = true
			continue
		}
		fmt.Println(report.String())
	}
	if failed {
		os.Exit(1)
	}
}
