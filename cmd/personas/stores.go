package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/historical-personas/internal/config"
	perr "github.com/KirkDiggler/historical-personas/internal/errors"
	"github.com/KirkDiggler/historical-personas/internal/repositories/journeys"
	"github.com/KirkDiggler/historical-personas/internal/repositories/personas"
	"github.com/KirkDiggler/historical-personas/internal/repositories/restorespecs"
)

// stores are the repositories selected by PERSONAS_STORE
type stores struct {
	Personas personas.Repository
	Journeys journeys.Repository
	Restores restorespecs.Repository

	closers []func() error
}

// Close releases every backend connection
func (s *stores) Close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}
}

// openStores connects the configured backend. An unreachable Redis falls
// back to in-memory repositories; SQLite only holds personas.
func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	s := &stores{}

	switch cfg.Store {
	case config.StoreRedis:
		client, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("redis unavailable, falling back to in-memory repositories", "error", err)
			break
		}
		logger.Info("using redis for persistence")
		s.closers = append(s.closers, client.Close)
		s.Personas = personas.NewRedisRepository(&personas.RedisRepoConfig{Client: client})
		s.Journeys = journeys.NewRedis(client)
		s.Restores = restorespecs.NewRedis(client, cfg.RestoreTTL)
	case config.StoreSQLite:
		repo, err := personas.OpenSQLite(cfg.SQLite.Path, nil)
		if err != nil {
			return nil, err
		}
		logger.Info("using sqlite for personas", "path", cfg.SQLite.Path)
		s.closers = append(s.closers, repo.Close)
		s.Personas = repo
	}

	if s.Personas == nil {
		s.Personas = personas.NewInMemoryRepository(nil)
	}
	if s.Journeys == nil {
		s.Journeys = journeys.NewInMemoryRepository()
	}
	if s.Restores == nil {
		s.Restores = restorespecs.NewInMemoryRepository(cfg.RestoreTTL, nil)
	}
	return s, nil
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, perr.WrapWithCode(err, perr.CodeInvalidArgument, "parse redis url")
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, perr.WrapWithCode(err, perr.CodeUnavailable, "ping redis")
	}
	return client, nil
}
