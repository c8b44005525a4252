// @title        User Management API
// @version      1.0
// @description  Cookie-session user directory with a separate admin surface.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/userhub/user-management/internal/api"
	"github.com/userhub/user-management/internal/api/cookie"
	"github.com/userhub/user-management/internal/api/handler"
	"github.com/userhub/user-management/internal/core/ports"
	"github.com/userhub/user-management/internal/core/service"
	"github.com/userhub/user-management/internal/core/validation"
	mongodb "github.com/userhub/user-management/internal/infrastructure/db/mongo"
	redisdb "github.com/userhub/user-management/internal/infrastructure/db/redis"
	"github.com/userhub/user-management/internal/pkg/config"
	"github.com/userhub/user-management/pkg/logger"
)

const (
	serviceName     = "user-management"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	v := validation.New()
	tokens := service.NewJWTManager(service.TokenConfig{
		AccessSecret:  cfg.Token.AccessSecret,
		RefreshSecret: cfg.Token.RefreshSecret,
		AccessTTL:     cfg.Token.AccessTTL,
		RefreshTTL:    cfg.Token.RefreshTTL,
	})
	users := service.NewUserService(userRepo, tokens, v, log.With().Str("component", "users").Logger())
	sessions := service.NewSessionService(tokens, userRepo, redisdb.NewRevocationStore(rdb), log.With().Str("component", "sessions").Logger())

	if cfg.Admin.Enabled() {
		created, err := users.EnsureAdmin(ctx, ports.SeedAdminInput{
			Name:     cfg.Admin.Name,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
			Image:    cfg.Admin.Image,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed bootstrap admin")
		}
		log.Info().Bool("created", created).Str("email", cfg.Admin.Email).Msg("bootstrap admin checked")
	}

	e := api.NewRouter(api.Dependencies{
		Users:     users,
		Sessions:  sessions,
		Validator: v,
		Health: map[string]handler.DependencyCheck{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
		Log: log,
		Cookies: cookie.Options{
			Secure:     cfg.IsProduction(),
			AccessTTL:  tokens.AccessTTL(),
			RefreshTTL: tokens.RefreshTTL(),
		},
		ClientOrigin: cfg.ClientOrigin,
		AdminRefresh: cfg.Token.AdminRefresh,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
