package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/presenter-rotation/internal/config"
	"github.com/diegoclair/presenter-rotation/internal/domain/service"
	"github.com/diegoclair/presenter-rotation/internal/handlers"
	"github.com/diegoclair/presenter-rotation/internal/i18n"
	"github.com/diegoclair/presenter-rotation/internal/logging"
	"github.com/diegoclair/presenter-rotation/internal/server"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	localizer, err := i18n.Load(cfg.DefaultLocale)
	if err != nil {
		slog.Error("Failed to load locales", "error", err)
		os.Exit(1)
	}

	instance := service.NewInstance(clockwork.NewRealClock(), cfg.Epoch())

	web, err := handlers.NewWebHandler(instance.Scheduler, instance.NewController, localizer, cfg.PublicURL, cfg.UpcomingWeeks)
	if err != nil {
		slog.Error("Failed to create page handler", "error", err)
		os.Exit(1)
	}

	var slack *handlers.SlackHandler
	if cfg.SlackEnabled() {
		slack = handlers.NewSlackHandler(instance.Scheduler, localizer, cfg.SlackSigningSecret, cfg.UpcomingWeeks)
	} else {
		slog.Info("SLACK_SIGNING_SECRET not set, slash commands disabled")
	}

	srv := server.NewServer(cfg, web, slack)

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		slog.Info("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Server stopped")
}
