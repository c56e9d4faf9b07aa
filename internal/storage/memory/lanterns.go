package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mood-village/server/internal/domain/lanterns"
)

type LanternStore struct {
	mu      sync.RWMutex
	data    map[string]lanterns.Lantern
	replies map[string][]lanterns.Reply // lanternID -> replies oldest-first
}

func NewLanternStore() *LanternStore {
	return &LanternStore{
		data:    make(map[string]lanterns.Lantern),
		replies: make(map[string][]lanterns.Reply),
	}
}

var _ lanterns.Repository = (*LanternStore)(nil)

func (s *LanternStore) ListLanterns(_ context.Context) ([]lanterns.Lantern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]lanterns.Lantern, 0, len(s.data))
	for _, lantern := range s.data {
		lantern.Replies = nil
		items = append(items, lantern)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *LanternStore) GetLantern(_ context.Context, id string) (*lanterns.Lantern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lantern, ok := s.data[id]
	if !ok {
		return nil, lanterns.ErrNotFound
	}
	lantern.Replies = nil
	return &lantern, nil
}

func (s *LanternStore) CreateLantern(_ context.Context, lantern lanterns.Lantern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[lantern.ID]; ok {
		return fmt.Errorf("duplicate lantern ID %q", lantern.ID)
	}
	lantern.Replies = nil
	s.data[lantern.ID] = lantern
	return nil
}

func (s *LanternStore) ListReplies(_ context.Context, lanternIDs []string) ([]lanterns.Reply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]lanterns.Reply, 0)
	for _, lanternID := range lanternIDs {
		out = append(out, s.replies[lanternID]...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *LanternStore) CreateReply(_ context.Context, reply lanterns.Reply) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[reply.LanternID]; !ok {
		return lanterns.ErrNotFound
	}
	s.replies[reply.LanternID] = append(s.replies[reply.LanternID], reply)
	return nil
}
