package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mood-village/server/internal/domain/checkins"
)

type CheckinStore struct {
	mu   sync.RWMutex
	data map[string][]checkins.Checkin // userID -> check-ins, append order
}

func NewCheckinStore() *CheckinStore {
	return &CheckinStore{data: make(map[string][]checkins.Checkin)}
}

var _ checkins.Repository = (*CheckinStore)(nil)

func (s *CheckinStore) CreateCheckin(_ context.Context, checkin checkins.Checkin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[checkin.UserID] = append(s.data[checkin.UserID], checkin)
	return nil
}

func (s *CheckinStore) ListByUser(_ context.Context, userID string) ([]checkins.Checkin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]checkins.Checkin, len(s.data[userID]))
	copy(items, s.data[userID])
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
