// Package main provides the entry point for the championship API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Nhat-School/F1-Demo/internal/config"
	"github.com/Nhat-School/F1-Demo/internal/database"
	"github.com/Nhat-School/F1-Demo/internal/health"
	"github.com/Nhat-School/F1-Demo/internal/logger"
	"github.com/Nhat-School/F1-Demo/internal/metrics"
	"github.com/Nhat-School/F1-Demo/internal/repository"
	"github.com/Nhat-School/F1-Demo/internal/scheduler"
	"github.com/Nhat-School/F1-Demo/internal/server"
	"github.com/Nhat-School/F1-Demo/internal/service"
)

const version = "1.0.0"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadWithDefaults(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     version,
	}).Info("Championship API server starting")

	metrics.InitRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	appLog.Info("Database connection established and schema migrated")

	repos, err := repository.NewRepositories(db)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to create repositories")
	}

	resultsSvc := service.NewResultsService(repos.Race, repos.Registration, repos.Result, appLog)
	standingsSvc := service.NewStandingsService(repos.Result, cfg.Standings.CacheTTL(), appLog)

	sched := scheduler.NewScheduler(standingsSvc, appLog)
	if err := sched.ScheduleStandingsRefresh(cfg.Standings.RefreshCron); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule standings refresh")
	}
	if err := sched.Start(); err != nil {
		appLog.WithError(err).Fatal("Failed to start scheduler")
	}
	defer sched.Stop()

	healthServer := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Version:     version,
		Port:        strconv.Itoa(cfg.Server.HealthPort),
		Logger:      appLog,
		DB:          db,
		Jobs:        sched,
	})
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}
	healthServer.SetReady(true)

	handlers := server.NewHandlers(repos, resultsSvc, standingsSvc, appLog)
	apiServer := server.New(cfg, handlers, appLog)

	// Warm the standings snapshot so the first read is served from cache.
	if _, err := standingsSvc.Refresh(ctx); err != nil {
		appLog.WithError(err).Warn("Initial standings refresh failed")
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		appLog.WithField("signal", sig).Info("Shutdown signal received")
		healthServer.SetReady(false)
		cancel()
	}()

	if err := apiServer.Run(ctx); err != nil {
		appLog.WithError(err).Fatal("API server failed")
	}

	appLog.Info("Championship API server shut down")
}
