package memory

import (
	"context"
	"sync"

	"github.com/mood-village/server/internal/domain/profiles"
)

type ProfileStore struct {
	mu   sync.RWMutex
	data map[string]profiles.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{data: make(map[string]profiles.Profile)}
}

var _ profiles.Repository = (*ProfileStore)(nil)

func (s *ProfileStore) GetProfile(_ context.Context, userID string) (*profiles.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.data[userID]
	if !ok {
		return nil, profiles.ErrNotFound
	}
	return &profile, nil
}

func (s *ProfileStore) UpsertProfile(_ context.Context, profile profiles.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[profile.UserID] = profile
	return nil
}
