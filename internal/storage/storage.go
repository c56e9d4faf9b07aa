// Package storage selects and groups the persistence backends. The choice
// between postgres and the in-memory fallback happens once, at startup;
// everything above this package sees one set of repository interfaces and a
// source label.
package storage

import (
	"context"

	"github.com/mood-village/server/internal/config"
	"github.com/mood-village/server/internal/domain/checkins"
	"github.com/mood-village/server/internal/domain/events"
	"github.com/mood-village/server/internal/domain/lanterns"
	"github.com/mood-village/server/internal/domain/profiles"
	"github.com/mood-village/server/internal/storage/memory"
	"github.com/mood-village/server/internal/storage/postgres"
	"github.com/rs/zerolog"
)

const (
	SourcePostgres = "postgres"
	SourceMemory   = "memory"
)

// Store groups data access by domain.
type Store interface {
	Events() events.Repository
	Lanterns() lanterns.Repository
	Checkins() checkins.Repository
	Profiles() profiles.Repository

	// Source labels the backend in API payloads: "postgres" or "memory".
	Source() string

	Ping(ctx context.Context) error
	Close()
}

// Open picks the backend from configuration. A set DATABASE_URL selects
// postgres, and a connection failure there is an error — the server never
// silently degrades to the fallback once a database was asked for. An empty
// URL selects the seeded in-memory store, meant for development and demos.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (Store, error) {
	if cfg.URL == "" {
		logger.Warn().Msg("DATABASE_URL not set; using in-memory fallback store (state is lost on restart)")
		store := memory.NewStore()
		store.Seed()
		return store, nil
	}

	store, err := postgres.Open(ctx, cfg.URL, cfg.MaxConnections)
	if err != nil {
		return nil, err
	}
	logger.Info().Msg("connected to postgres")
	return store, nil
}
