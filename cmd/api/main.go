package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hotel-booking/engine/internal/api"
	"github.com/hotel-booking/engine/internal/api/handlers"
	"github.com/hotel-booking/engine/internal/migrations"
	"github.com/hotel-booking/engine/internal/repository"
	"github.com/hotel-booking/engine/internal/services"
	"github.com/hotel-booking/engine/pkg/config"
	"github.com/hotel-booking/engine/pkg/database"
	"github.com/hotel-booking/engine/pkg/logger"

	_ "github.com/hotel-booking/engine/docs"
)

// @title           Hotel Booking API
// @version         1.0
// @description     Hotels, rooms, guests and room bookings with overlap and capacity checks.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting hotel booking api",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DSN(), log, database.DefaultOptions(cfg.AppEnv))
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	if cfg.DBAutoMigrate {
		if err := migrations.Run(db); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
		log.Info("migrations applied")
	}

	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	var secret []byte
	if cfg.JWTSecret != "" {
		secret = []byte(cfg.JWTSecret)
	} else {
		log.Warn("JWT_SECRET not set, /api/v1 is served without authentication")
	}

	router := api.NewRouter(api.Dependencies{
		HMACSecret:      secret,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitRPS:    cfg.RateLimitRPS,
		RateLimitBurst:  cfg.RateLimitBurst,
		Ping:            func(ctx context.Context) error { return database.Ping(ctx, db) },
		UsersHandler:    handlers.NewUsersHandler(services.NewUserService(userRepo)),
		HotelsHandler:   handlers.NewHotelsHandler(services.NewHotelService(hotelRepo)),
		RoomsHandler:    handlers.NewRoomsHandler(services.NewRoomService(hotelRepo, roomRepo)),
		BookingsHandler: handlers.NewBookingsHandler(services.NewBookingService(userRepo, hotelRepo, bookingRepo)),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
	closeDB(db)
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.L().Warn("closing database failed", zap.Error(err))
	}
}
