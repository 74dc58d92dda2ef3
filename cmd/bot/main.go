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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"

	"github.com/zigbotdev/zigbot/internal/config"
	"github.com/zigbotdev/zigbot/internal/domain/service"
	"github.com/zigbotdev/zigbot/internal/handlers"
	"github.com/zigbotdev/zigbot/internal/logger"
	"github.com/zigbotdev/zigbot/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	store, err := storage.New(cfg.DataDir, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize storage")
	}

	slackClient := slack.New(cfg.SlackBotToken)

	services, err := service.New(store, slackClient, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to build services")
	}

	registry := handlers.NewRegistry(log)
	registry.Register(handlers.NewActionItemHandler(services.ActionItem, slackClient, cfg.DevelopmentCommands, log))
	registry.Register(handlers.NewCrosswordHandler(services.Crossword, slackClient, services.Location, cfg.DevelopmentCommands, log))
	registry.Register(handlers.NewFeedbackHandler(services.Feedback, log))
	registry.Register(handlers.NewImageToGifHandler(services.Gif, slackClient, log))

	if err := registry.Initialize(); err != nil {
		log.WithError(err).Fatal("failed to initialize handlers")
	}

	slackHandler := handlers.New(registry, slackClient, services.Crossword, cfg.SlackSigningSecret, log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/slack/commands", slackHandler.HandleSlashCommand)
	r.Post("/slack/events", slackHandler.HandleEvents)
	r.Get("/health", slackHandler.HandleHealth)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("server shutdown did not finish cleanly")
		}

		registry.Shutdown()

		if err := store.Flush(); err != nil {
			log.WithError(err).Error("failed to flush data files")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("server error")
	}
	log.Info("server stopped")
}
