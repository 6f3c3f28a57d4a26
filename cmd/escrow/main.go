package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/config"
	"github.com/rekberid/rekber/internal/pkg/database"
	"github.com/rekberid/rekber/internal/pkg/health"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/middleware"
	natspkg "github.com/rekberid/rekber/internal/pkg/nats"
	"github.com/rekberid/rekber/internal/pkg/server"
	"github.com/rekberid/rekber/services/escrow/gateway"
	"github.com/rekberid/rekber/services/escrow/handler"
	httpHandler "github.com/rekberid/rekber/services/escrow/handler/http"
	natsHandler "github.com/rekberid/rekber/services/escrow/handler/nats"
	"github.com/rekberid/rekber/services/escrow/repository"
	"github.com/rekberid/rekber/services/escrow/usecase"
)

func main() {
	appName := "escrow-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/escrow.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client (rate limiting)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repository
	escrowRepo := repository.NewEscrowRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	escrowGW := gateway.NewEscrowGW(natsClient, configs.Gateway, zapLogger)

	// Initialize usecase
	escrowUC := usecase.NewEscrowUC(configs, escrowRepo, escrowGW)

	// Handlers for HTTP
	escrowHandler := httpHandler.NewEscrowHandler(escrowUC)
	disputeHandler := httpHandler.NewDisputeHandler(escrowUC)
	walletHandler := httpHandler.NewWalletHandler(escrowUC)
	sweepHandler := httpHandler.NewSweepHandler(escrowUC)
	webhookHandler := httpHandler.NewWebhookHandler(escrowUC, configs.Gateway)

	// Handler for NATS
	payoutHandler := natsHandler.NewPayoutHandler(escrowUC, natsClient)

	h := handler.NewHandler(
		escrowHandler,
		disputeHandler,
		walletHandler,
		sweepHandler,
		webhookHandler,
		payoutHandler,
		redisClient.GetClient(),
		configs,
	)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints with dependency checks
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/ping", health.NewPingHandler(appName))

	// Register service routes and start NATS consumers
	if err := h.RegisterRoutes(e); err != nil {
		logger.Fatal("Failed to register routes", logger.Err(err))
	}

	// Optional in-process auto-release sweep ticker
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	if configs.Escrow.SweepIntervalMinutes > 0 {
		go escrowUC.RunSweepLoop(sweepCtx)
	}

	// Register cleanup in dependency order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		cancelSweep()
		h.Shutdown()
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		logger.Fatal("Server failed", logger.Err(err))
	}

	if err := shutdownManager.Shutdown(context.Background()); err != nil {
		logger.Error("Cleanup failed", logger.Err(err))
	}

	logger.Info("Application stopped", logger.String("app", appName))
}
