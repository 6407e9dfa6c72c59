package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/tennis-directory/internal/config"
	"github.com/mauv0809/tennis-directory/internal/database"
	"github.com/mauv0809/tennis-directory/internal/evaluation"
	"github.com/mauv0809/tennis-directory/internal/forwarder"
	server "github.com/mauv0809/tennis-directory/internal/http"
	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/notifier"
	"github.com/mauv0809/tennis-directory/internal/notifier/slack"
	"github.com/mauv0809/tennis-directory/internal/player"
	"github.com/mauv0809/tennis-directory/internal/pubsub"
	"github.com/mauv0809/tennis-directory/internal/upstream"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	log.SetLevel(config.ParseLevel(cfg.LogLevel))

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

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	playerStore := player.New(db)
	if _, err := player.EnsureSeeded(playerStore, player.RosterFrom(cfg.RosterFile)); err != nil {
		log.Fatalf("Failed to seed players: %s", err)
	}
	directory, err := player.NewDirectory(playerStore, metricsSvc)
	if err != nil {
		log.Fatalf("Failed to load player directory: %s", err)
	}

	// Server-side sinks for evaluations the upstream accepted.
	var sinks []evaluation.Sink
	if cfg.Slack.Enabled() {
		slackNotifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
		sinks = append(sinks, evaluation.Sink{Name: "slack", Recorder: notifier.NewRecorder(slackNotifier, directory.Get)})
	} else {
		log.Info("Slack notifications disabled")
	}
	if cfg.PubSub.Enabled() {
		ps, err := pubsub.New(context.Background(), cfg.PubSub.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer ps.Close()
		sinks = append(sinks, evaluation.Sink{Name: "pubsub", Recorder: pubsub.NewRecorder(ps, cfg.PubSub.Topic, metricsSvc)})
	} else {
		log.Info("Pub/Sub publishing disabled")
	}

	var observers []forwarder.Observer
	if len(sinks) > 0 {
		observers = append(observers, evaluation.NewRelayObserver(evaluation.Multi(metricsSvc, sinks...)))
	}
	fwd := forwarder.New(upstream.NewClient(cfg.Upstream.URL), metricsSvc, observers...)

	s := server.NewServer(
		directory,
		metricsSvc,
		metricsHandler,
		cfg,
		fwd,
	)

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

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port, "upstream", cfg.Upstream.URL)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
