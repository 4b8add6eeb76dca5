package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/pingability/pingability-api/internal/config"
	"github.com/pingability/pingability-api/internal/database"
	"github.com/pingability/pingability-api/internal/handler"
	"github.com/pingability/pingability-api/internal/mailer"
	"github.com/pingability/pingability-api/internal/middleware"
	"github.com/pingability/pingability-api/internal/router"
	"github.com/pingability/pingability-api/internal/service"
	"github.com/pingability/pingability-api/internal/validation"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger = logger.With().Str("service", cfg.AppName).Str("env", cfg.AppEnv).Logger()

	if cfg.Mail.APIKey == "" {
		logger.Warn().Msg("mail provider api key not set; inquiries will fail until it is configured")
	}

	dispatcher, err := mailer.NewDispatcher(cfg.Mail, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare email templates")
	}

	limiter := middleware.RateLimitConfig{
		Identifier: "inquiry",
		Max:        cfg.RateLimitMax,
		Window:     cfg.RateLimitWindow,
	}
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		limiter.Storage = database.NewLimiterStorage(redisClient, "pingability:ratelimit")
	}

	inquiryService := service.NewInquiryService(validation.New(), dispatcher, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		BodyLimit:    64 * 1024,
	})

	middleware.Register(app, middleware.Config{
		Logger:      &logger,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   cfg.AppEnv == "development",
	})
	router.Register(app, cfg, router.Dependencies{
		InquiryHandler: handler.NewInquiryHandler(inquiryService, logger),
		PricingHandler: handler.NewPricingHandler(),
		PaymentHandler: handler.NewPaymentHandler(logger),
		InquiryLimiter: middleware.RateLimit(limiter),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	waitForShutdown(app, logger)
}

func waitForShutdown(app *fiber.App, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
