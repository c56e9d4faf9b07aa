// Package memory is the in-memory fallback backend: process-local maps
// guarded by RWMutexes, explicitly constructed and injected so tests never
// share state through package globals. Nothing survives a restart.
package memory

import (
	"context"

	"github.com/mood-village/server/internal/domain/checkins"
	"github.com/mood-village/server/internal/domain/events"
	"github.com/mood-village/server/internal/domain/lanterns"
	"github.com/mood-village/server/internal/domain/profiles"
)

type Store struct {
	events   *EventStore
	lanterns *LanternStore
	checkins *CheckinStore
	profiles *ProfileStore
}

func NewStore() *Store {
	return &Store{
		events:   NewEventStore(),
		lanterns: NewLanternStore(),
		checkins: NewCheckinStore(),
		profiles: NewProfileStore(),
	}
}

func (s *Store) Events() events.Repository {
	return s.events
}

func (s *Store) Lanterns() lanterns.Repository {
	return s.lanterns
}

func (s *Store) Checkins() checkins.Repository {
	return s.checkins
}

func (s *Store) Profiles() profiles.Repository {
	return s.profiles
}

func (s *Store) Source() string {
	return "memory"
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Close() {}
