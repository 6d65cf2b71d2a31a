package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hotel-booking/engine/pkg/config"
	"github.com/hotel-booking/engine/pkg/database"
	"github.com/hotel-booking/engine/pkg/logger"

	"github.com/hotel-booking/engine/internal/queue/tasks"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	}

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DSN(), log, database.DefaultOptions(cfg.AppEnv))
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get database handle", zap.Error(err))
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("closing database failed", zap.Error(err))
		}
	}()

	bookingSvc := services.NewBookingService(
		repository.NewUserRepository(db),
		repository.NewHotelRepository(db),
		repository.NewBookingRepository(db),
	)

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.AsynqConcurrency,
		Logger:      log.Named("asynq").Sugar(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, t *asynq.Task, err error) {
			log.Error("task failed", zap.String("task_type", t.Type()), zap.Error(err))
		}),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSettleBookings, tasks.NewSettleTaskHandler(bookingSvc).HandleSettle)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   log.Named("scheduler").Sugar(),
	})
	settle, err := tasks.NewSettleTask(time.Time{})
	if err != nil {
		log.Fatal("failed to build settle task", zap.Error(err))
	}
	entryID, err := scheduler.Register(cfg.SettleSchedule, settle)
	if err != nil {
		log.Fatal("failed to register settle schedule", zap.String("schedule", cfg.SettleSchedule), zap.Error(err))
	}
	log.Info("settle schedule registered", zap.String("schedule", cfg.SettleSchedule), zap.String("entry_id", entryID))

	log.Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
	if err := srv.Start(mux); err != nil {
		log.Fatal("failed to start worker", zap.Error(err))
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal("failed to start scheduler", zap.Error(err))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	scheduler.Shutdown()
	// Lets in-flight tasks finish.
	srv.Shutdown()
}
