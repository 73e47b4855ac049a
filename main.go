package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-tracker/internal/config"
	"github.com/mauv0809/pickle-tracker/internal/database"
	server "github.com/mauv0809/pickle-tracker/internal/http"
	"github.com/mauv0809/pickle-tracker/internal/match"
	"github.com/mauv0809/pickle-tracker/internal/metrics"
	"github.com/mauv0809/pickle-tracker/internal/notifier"
	"github.com/mauv0809/pickle-tracker/internal/notifier/slack"
	"github.com/mauv0809/pickle-tracker/internal/rallylog"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping default", "level", cfg.LogLevel)
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var subscribers []match.Subscriber
	var rallyLog rallylog.Store
	if cfg.DBName != "" || cfg.Turso.PrimaryURL != "" {
		db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		dbInitDuration := time.Since(startTime)
		log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
		if err != nil {
			log.Fatalf("Failed to initialize database: %s", err)
		}
		defer func() {
			log.Info("Closing database connection")
			dbTeardown()
		}()
		rallyLog = rallylog.New(db)
		subscribers = append(subscribers, rallylog.NewRecorder(rallyLog, metricsSvc))
	} else {
		log.Info("No database configured, rally log disabled")
	}

	if cfg.Slack.Enabled() {
		slackNotifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
		subscribers = append(subscribers, notifier.NewForwarder(slackNotifier, cfg.Slack.DryRun))
	} else {
		log.Info("Slack not configured, notifications disabled")
	}

	controller := match.New(metricsSvc, subscribers...)
	if _, err := controller.Create(cfg.Match.MatchConfig()); err != nil {
		log.Fatalf("Failed to create initial game: %s", err)
	}

	s := server.NewServer(controller, rallyLog, metricsHandler)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
