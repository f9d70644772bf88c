package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"giveaway-bot-backend/internal/common/config"
	"giveaway-bot-backend/internal/common/logger"
	giveawaydelivery "giveaway-bot-backend/internal/features/giveaway/delivery/discord"
	giveawayrepo "giveaway-bot-backend/internal/features/giveaway/repository/postgres"
	"giveaway-bot-backend/internal/features/giveaway/service"
	infodelivery "giveaway-bot-backend/internal/features/info/delivery/discord"
	apphttp "giveaway-bot-backend/internal/http"
	"giveaway-bot-backend/internal/platform/db"
	"giveaway-bot-backend/internal/platform/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init("giveaway-bot", cfg.Debug)
	logger.Info().Bool("debug", cfg.Debug).Msg("Starting giveaway bot")

	verificationKey, err := cfg.VerificationKey()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid verification key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx, database); err != nil {
			logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}
	logger.Info().Msg("Database ready")

	client, err := discord.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create discord client")
	}

	repo := giveawayrepo.NewPostgresRepository(database)
	clock := service.SystemClock()
	giveawaySvc := service.NewGiveawayService(repo, client, cfg, clock)

	sweeper := service.NewRetentionSweeper(repo, cfg, clock)
	sweeper.Start()
	defer sweeper.Stop()

	marker := service.NewExpiryMarker(repo, cfg, clock)
	marker.Start()
	defer marker.Stop()

	dispatcher := apphttp.NewInteractionDispatcher(
		giveawaydelivery.NewHandler(giveawaySvc, cfg),
		infodelivery.NewHandler(client, cfg),
	)
	router := apphttp.NewRouter(verificationKey, dispatcher, cfg.Debug)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	logger.Info().Msg("Server exited")
}
