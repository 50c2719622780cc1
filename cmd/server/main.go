package main

import (
	"github.com/h9rms/wanderlust-grid-bloom/internal/app"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/cache"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/config"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/database"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/queue"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/s3"
)

// @title           Wanderlust Blog API
// @version         1.0
// @description     Travel blog backend: posts with author profiles, likes and saves, and an AI travel assistant.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// Notifications degrade gracefully when the broker is unreachable.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, notifications disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
