package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"game-matchmaker/internal/adapter/api"
	"game-matchmaker/internal/adapter/client"
	"game-matchmaker/internal/config"
	"game-matchmaker/internal/logging"
	"game-matchmaker/internal/usecase"
)

func main() {
	loaded := config.LoadDotEnv(config.DefaultEnvFiles...)

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if len(loaded) == 0 {
		logging.Info().Msg("no .env file found, using system environment variables")
	} else {
		logging.Info().Strs("files", loaded).Msg("loaded .env files")
	}

	ctx := context.Background()

	// The provider is built once and injected; nothing is created at import time.
	provider := client.NewProvider(ctx, cfg)
	recommender := usecase.NewRecommender(provider)

	app := api.NewApp(cfg.Server.AppName)
	handler := api.NewRecommendationHandler(recommender)
	api.SetupRouter(app, handler, cfg.AllowedOrigins())

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		logging.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logging.Error().Err(err).Msg("shutdown failed")
		}
	}()

	logging.Info().
		Str("addr", cfg.Addr()).
		Str("provider", provider.Name()).
		Strs("cors_origins", cfg.AllowedOrigins()).
		Msg("Steam Game Matchmaker API running")

	if err := app.Listen(cfg.Addr()); err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
}
