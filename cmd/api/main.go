package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedlink/config"
	_ "schedlink/docs" // Swagger docs
	availabilityUC "schedlink/internal/availability/usecase"
	bookingUC "schedlink/internal/booking/usecase"
	"schedlink/internal/httpserver"
	settingsRepo "schedlink/internal/settings/repository/kv"
	settingsUC "schedlink/internal/settings/usecase"
	"schedlink/pkg/encrypter"
	"schedlink/pkg/gcalendar"
	"schedlink/pkg/kvstore"
	"schedlink/pkg/log"
	"schedlink/pkg/ownertoken"
	"schedlink/pkg/tzdate"
)

// @title       Schedlink API
// @description Scheduling-link service: event types, availability, and Google Calendar booking.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Schedlink...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage: Redis when configured, process memory otherwise
	var store kvstore.Store
	if cfg.Redis.Addr != "" {
		redisStore, rErr := kvstore.NewRedis(ctx, kvstore.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if rErr != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", rErr)
			return
		}
		store = redisStore
		logger.Infof(ctx, "Using Redis store at %s", cfg.Redis.Addr)
	} else {
		store = kvstore.NewMemory()
		logger.Warn(ctx, "No Redis configured; config and tokens will not survive restarts")
	}

	// 4. Token sealing and resolution
	enc, err := encrypter.New(cfg.Auth.Secret)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize encrypter: %v", err)
		return
	}

	var durableStore kvstore.Store
	if cfg.Redis.Addr != "" {
		durableStore = store
	}
	tokenResolver := ownertoken.NewResolver(ownertoken.Config{
		ClientID:              cfg.Google.ClientID,
		ClientSecret:          cfg.Google.ClientSecret,
		Store:                 durableStore,
		EncryptedRefreshToken: cfg.Auth.EncryptedOwnerRefreshToken,
		Encrypter:             enc,
	})

	// 5. Domains
	tz := tzdate.NewConverter()
	calendar := gcalendar.NewProvider()

	configRepo := settingsRepo.New(store, logger)
	settings := settingsUC.New(logger, configRepo)
	availability := availabilityUC.New(logger, settings, tokenResolver, calendar, tz)
	booking := bookingUC.New(logger, settings, tokenResolver, calendar, tz)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AdminAPIKey:    cfg.Auth.AdminAPIKey,
		RateLimit:      cfg.RateLimit,
		SettingsUC:     settings,
		AvailabilityUC: availability,
		BookingUC:      booking,
		TokenResolver:  tokenResolver,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
