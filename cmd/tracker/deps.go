package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fennwald/tracker-api/internal/auth"
	"github.com/fennwald/tracker-api/internal/config"
	"github.com/fennwald/tracker-api/internal/pkg/clock"
	"github.com/fennwald/tracker-api/internal/pkg/idgen"
	redisclient "github.com/fennwald/tracker-api/internal/redis"
	"github.com/fennwald/tracker-api/internal/repositories/credentials"
	"github.com/fennwald/tracker-api/internal/repositories/snapshot"
	"github.com/fennwald/tracker-api/internal/store/party"
)

// deps is everything the commands need, wired once per invocation.
type deps struct {
	cfg       *config.Config
	store     *party.Store
	gateway   *auth.Gateway
	snapshots snapshot.Repository
	ids       idgen.Generator
}

func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	setupLogging(cfg.LogLevel)

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		PoolSize:        cfg.RedisPoolSize,
		ConnMaxIdleTime: cfg.RedisIdleTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	snapshots, err := snapshot.NewRedis(&snapshot.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot repository: %w", err)
	}

	creds, err := credentials.NewRedis(&credentials.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create credentials repository: %w", err)
	}

	gateway, err := auth.NewGateway(&auth.Config{
		Client:      auth.NewHTTP(cfg.AuthURL),
		Session:     auth.NewSession(),
		Credentials: creds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth gateway: %w", err)
	}

	return &deps{
		cfg:       cfg,
		store:     party.New(&party.Config{Clock: clock.New()}),
		gateway:   gateway,
		snapshots: snapshots,
		ids:       idgen.NewPrefixed("rec"),
	}, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
