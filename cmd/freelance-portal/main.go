package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abinash-k/Freelance-Portal/internal/api"
	"github.com/Abinash-k/Freelance-Portal/internal/config"
	"github.com/Abinash-k/Freelance-Portal/internal/email"
	"github.com/Abinash-k/Freelance-Portal/internal/logger"
	"github.com/Abinash-k/Freelance-Portal/internal/store/postgres"
	"github.com/Abinash-k/Freelance-Portal/internal/zoom"
)

func main() {
	log := logger.New("freelance-portal")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("zoom_base_url", cfg.ZoomBaseURL).
		Str("resend_base_url", cfg.ResendBaseURL).
		Msg("Portal backend starting")

	// -------- Storage layer -----------------
	db, err := postgres.Open(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres unavailable")
	}
	st := postgres.NewWithDB(db)

	// -------- Outbound integrations ---------
	issuer, err := zoom.NewHS256Issuer(cfg.ZoomAPIKey, cfg.ZoomAPISecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Zoom credentials missing")
	}
	rooms := zoom.NewClient(cfg.ZoomBaseURL)
	sender, err := email.NewClient(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.EmailFrom)
	if err != nil {
		log.Fatal().Err(err).Msg("Resend credentials missing")
	}
	invites := email.NewDispatcher(sender, log)

	// -------- Router & Server --------------
	handler := api.NewRouter(api.Deps{
		Store:   st,
		DB:      db,
		Issuer:  issuer,
		Rooms:   rooms,
		Invites: invites,
		Log:     log,
	})
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
