package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-bot-dashboard/config"
	twilioGateway "restaurant-bot-dashboard/internal/adapter/gateway/twilio"
	httpHandler "restaurant-bot-dashboard/internal/adapter/http/handler"
	"restaurant-bot-dashboard/internal/adapter/messaging/rabbitmq"
	pgStorage "restaurant-bot-dashboard/internal/adapter/storage/postgres"
	redisStorage "restaurant-bot-dashboard/internal/adapter/storage/redis"
	"restaurant-bot-dashboard/internal/core/ports"
	"restaurant-bot-dashboard/internal/service"
	"restaurant-bot-dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Restaurant Bot Dashboard")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be set (RBD_JWT_SECRET)")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	campaignRepo := pgStorage.NewCampaignRepo(pool)
	recipientRepo := pgStorage.NewRecipientRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	cancelLock := redisStorage.NewCancelLock(rdb)
	dedupStore := redisStorage.NewCallbackDedupStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	healthCheckers := []ports.HealthChecker{
		pgStorage.NewHealthCheck(pool),
		redisStorage.NewHealthCheck(rdb),
	}

	// Optional event publisher. Left as a nil interface when disabled.
	var events ports.EventPublisher
	if cfg.Events.Enabled() {
		publisher, err := rabbitmq.NewPublisher(cfg.Events, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer publisher.Close()
		events = publisher
		healthCheckers = append(healthCheckers, publisher)
	} else {
		log.Info().Msg("Event publishing disabled (events.url not set)")
	}

	// Messaging provider
	if cfg.Twilio.AccountSID == "" || cfg.Twilio.AuthToken == "" {
		log.Warn().Msg("Twilio credentials not configured, provider cancellations will be rejected")
	}
	gateway := twilioGateway.NewGateway(cfg.Twilio, log)

	var sigValidator ports.SignatureValidator
	if cfg.Twilio.ValidateSignatures {
		sigValidator = twilioGateway.NewSignatureValidator(cfg.Twilio.AuthToken)
	}

	// Initialize services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)
	campaignSvc := service.NewCampaignService(
		campaignRepo,
		recipientRepo,
		gateway,
		cancelLock,
		dedupStore,
		events,
		transactor,
		service.CampaignOptions{
			CancelConcurrency: cfg.Campaign.CancelConcurrency,
			CancelBatchSize:   cfg.Campaign.CancelBatchSize,
			CancelLockTTL:     cfg.Campaign.CancelLockTTL,
			DedupTTL:          cfg.Webhook.DedupTTL,
		},
		log,
	)

	// Setup Gin router with all routes
	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CampaignSvc:    campaignSvc,
		TokenSvc:       tokenSvc,
		SigValidator:   sigValidator,
		WebhookBaseURL: cfg.Twilio.WebhookBaseURL,
		RateLimitStore: rateLimitStore,
		AuditSvc:       auditSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// In-flight cancellation sweeps can run long; give them time to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
