package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pixelforge/agency-api/internal/api"
	"github.com/pixelforge/agency-api/internal/infrastructure/chat"
	"github.com/pixelforge/agency-api/internal/infrastructure/config"
	mongodb "github.com/pixelforge/agency-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pixelforge/agency-api/internal/infrastructure/db/redis"
	"github.com/pixelforge/agency-api/internal/infrastructure/identity"
	"github.com/pixelforge/agency-api/internal/infrastructure/mail"
	"github.com/pixelforge/agency-api/internal/infrastructure/storage"
	"github.com/pixelforge/agency-api/pkg/logger"

	_ "github.com/pixelforge/agency-api/docs"
)

// @title        Agency API
// @version      1.0
// @description  Marketing site and client project dashboard API.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	uploads, err := storage.New(ctx, storage.Config{
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}

	e := api.NewRouter(cfg, db, rdb, api.ExternalPorts{
		Storage:   uploads,
		Verifier:  identity.NewGoogleVerifier(cfg.Identity.CertsURL, cfg.Identity.Audience),
		Mailer:    mail.NewLogMailer(cfg.PublicBaseURL, log),
		Completer: chat.NewCannedCompleter(),
	}, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
