// Package postgres is the managed backend: pgx repositories over the
// events, event_rsvps, lanterns, lantern_replies, profiles and checkins
// tables. Failures here propagate to the caller; there is no silent fall
// back to the in-memory store.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mood-village/server/internal/domain/checkins"
	"github.com/mood-village/server/internal/domain/events"
	"github.com/mood-village/server/internal/domain/lanterns"
	"github.com/mood-village/server/internal/domain/profiles"
)

type Store struct {
	pool *pgxpool.Pool
}

// Open connects the pool and verifies the database is reachable.
func Open(ctx context.Context, url string, maxConns int) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// NewStore wraps an existing pool; used by tests that manage their own pool.
func NewStore(pool *pgxpool.Pool) (*Store, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres store: pool is nil")
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Events() events.Repository {
	return &EventRepository{pool: s.pool}
}

func (s *Store) Lanterns() lanterns.Repository {
	return &LanternRepository{pool: s.pool}
}

func (s *Store) Checkins() checkins.Repository {
	return &CheckinRepository{pool: s.pool}
}

func (s *Store) Profiles() profiles.Repository {
	return &ProfileRepository{pool: s.pool}
}

func (s *Store) Source() string {
	return "postgres"
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}
