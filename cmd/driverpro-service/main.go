package main

import (
	"fmt"
	"os"

	"driverpro-service/internal/auth"
	"driverpro-service/internal/client"
	"driverpro-service/internal/config"
	httphandler "driverpro-service/internal/http"
	"driverpro-service/internal/http/middleware"
	"driverpro-service/internal/logger"
	"driverpro-service/internal/service"
	"driverpro-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	appStore := store.New()
	if cfg.SeedDemoData {
		if err := appStore.SeedDemoData(); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		appLogger.Info().Msg("demo data seeded")
	}

	requestService := service.NewRequestService(appStore)
	userService := service.NewUserService(appStore)
	vehicleService := service.NewVehicleService(appStore)
	notificationService := service.NewNotificationService(appStore)
	statsService := service.NewStatsService(appStore)

	assistant := client.NewAssistantClient(cfg)

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(
		requestService,
		userService,
		vehicleService,
		notificationService,
		statsService,
		assistant,
		issuer,
		appLogger,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting driverpro service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
