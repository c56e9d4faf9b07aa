package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mood-village/server/internal/domain/events"
)

// EventStore keeps events and their RSVP votes in maps. The RWMutex is not
// optional: the HTTP server runs handlers on many goroutines.
type EventStore struct {
	mu    sync.RWMutex
	data  map[string]events.Record
	votes map[string]map[string]events.Status // eventID -> userID -> status
}

func NewEventStore() *EventStore {
	return &EventStore{
		data:  make(map[string]events.Record),
		votes: make(map[string]map[string]events.Status),
	}
}

var _ events.Repository = (*EventStore)(nil)

func (s *EventStore) ListEvents(_ context.Context) ([]events.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]events.Record, 0, len(s.data))
	for _, record := range s.data {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].StartsAt.Equal(records[j].StartsAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].StartsAt.Before(records[j].StartsAt)
	})
	return records, nil
}

func (s *EventStore) GetEvent(_ context.Context, id string) (*events.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[id]
	if !ok {
		return nil, events.ErrNotFound
	}
	return &record, nil
}

func (s *EventStore) CreateEvent(_ context.Context, record events.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[record.ID]; ok {
		return fmt.Errorf("duplicate event ID %q", record.ID)
	}
	s.data[record.ID] = record
	return nil
}

func (s *EventStore) SaveEvent(_ context.Context, record events.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[record.ID]; !ok {
		return events.ErrNotFound
	}
	s.data[record.ID] = record
	return nil
}

func (s *EventStore) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return events.ErrNotFound
	}
	delete(s.data, id)
	delete(s.votes, id) // votes go with the event, like the FK cascade
	return nil
}

func (s *EventStore) ListRSVPs(_ context.Context, eventIDs []string) ([]events.RSVP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rsvps := make([]events.RSVP, 0)
	for _, eventID := range eventIDs {
		users := make([]string, 0, len(s.votes[eventID]))
		for userID := range s.votes[eventID] {
			users = append(users, userID)
		}
		sort.Strings(users)
		for _, userID := range users {
			rsvps = append(rsvps, events.RSVP{
				EventID: eventID,
				UserID:  userID,
				Status:  s.votes[eventID][userID],
			})
		}
	}
	return rsvps, nil
}

func (s *EventStore) UpsertRSVP(_ context.Context, rsvp events.RSVP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[rsvp.EventID]; !ok {
		return events.ErrNotFound
	}
	if s.votes[rsvp.EventID] == nil {
		s.votes[rsvp.EventID] = make(map[string]events.Status)
	}
	s.votes[rsvp.EventID][rsvp.UserID] = rsvp.Status
	return nil
}
