package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mood-village/server/internal/sanitize"
)

const defaultCategory = "General"

var validate = validator.New()

// Service is the event store facade: it validates input, enforces host-only
// mutation rights, and returns normalized items with RSVP aggregates
// regardless of which backend sits behind the repository.
type Service struct {
	repo   Repository
	source string
	now    func() time.Time
}

func NewService(repo Repository, source string) *Service {
	return &Service{repo: repo, source: source, now: time.Now}
}

// List returns every event sorted ascending by start time, annotated with
// full aggregates and the requesting user's own vote. Reads are public: no
// filtering by actor.
func (s *Service) List(ctx context.Context, userID string) (ListResult, error) {
	records, err := s.repo.ListEvents(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("list events: %w", err)
	}

	eventIDs := make([]string, 0, len(records))
	for _, record := range records {
		eventIDs = append(eventIDs, record.ID)
	}

	rsvps, err := s.repo.ListRSVPs(ctx, eventIDs)
	if err != nil {
		return ListResult{}, fmt.Errorf("list rsvps: %w", err)
	}

	return ListResult{Source: s.source, Events: buildItems(records, rsvps, userID)}, nil
}

// Create validates and persists a new event hosted by userID. The created
// event comes back with zero RSVPs in all three buckets.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (EventResult, error) {
	input.Title = strings.TrimSpace(sanitize.Text(input.Title))
	input.Description = strings.TrimSpace(sanitize.HTML(input.Description))
	input.Location = strings.TrimSpace(sanitize.Text(input.Location))
	input.Category = strings.TrimSpace(sanitize.Text(input.Category))

	if err := validate.Struct(input); err != nil {
		return EventResult{}, ValidationError{Message: "title, startsAt and location are required"}
	}

	startsAt, err := parseStartsAt(input.StartsAt)
	if err != nil {
		return EventResult{}, err
	}

	if input.Category == "" {
		input.Category = defaultCategory
	}

	now := s.now().UTC()
	record := Record{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    startsAt,
		Location:    input.Location,
		Category:    input.Category,
		MicroEvent:  input.MicroEvent,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateEvent(ctx, record); err != nil {
		return EventResult{}, fmt.Errorf("create event: %w", err)
	}

	item := buildItem(record, nil, userID)
	return EventResult{Source: s.source, Event: &item}, nil
}

// Update applies the non-nil fields of input to the stored event. Only the
// host may update; ErrNotFound and ErrForbidden distinguish the failure
// modes. Stored RSVP rows are never touched.
func (s *Service) Update(ctx context.Context, userID, eventID string, input UpdateInput) (EventResult, error) {
	record, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return EventResult{}, err
	}
	if record.CreatedBy != userID {
		return EventResult{}, ErrForbidden
	}

	if input.Title != nil {
		title := strings.TrimSpace(sanitize.Text(*input.Title))
		if title == "" {
			return EventResult{}, ValidationError{Field: "title", Message: "must not be empty"}
		}
		record.Title = title
	}
	if input.Description != nil {
		record.Description = strings.TrimSpace(sanitize.HTML(*input.Description))
	}
	if input.StartsAt != nil {
		startsAt, err := parseStartsAt(*input.StartsAt)
		if err != nil {
			return EventResult{}, err
		}
		record.StartsAt = startsAt
	}
	if input.Location != nil {
		location := strings.TrimSpace(sanitize.Text(*input.Location))
		if location == "" {
			return EventResult{}, ValidationError{Field: "location", Message: "must not be empty"}
		}
		record.Location = location
	}
	if input.Category != nil {
		category := strings.TrimSpace(sanitize.Text(*input.Category))
		if category == "" {
			category = defaultCategory
		}
		record.Category = category
	}
	if input.MicroEvent != nil {
		record.MicroEvent = *input.MicroEvent
	}
	record.UpdatedAt = s.now().UTC()

	if err := s.repo.SaveEvent(ctx, *record); err != nil {
		return EventResult{}, fmt.Errorf("save event: %w", err)
	}

	return s.refresh(ctx, *record, userID)
}

// Delete removes the event permanently. Only the host may delete. RSVP rows
// for the event are removed with it.
func (s *Service) Delete(ctx context.Context, userID, eventID string) (DeleteResult, error) {
	record, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return DeleteResult{Source: s.source}, err
	}
	if record.CreatedBy != userID {
		return DeleteResult{Source: s.source}, ErrForbidden
	}

	if err := s.repo.DeleteEvent(ctx, eventID); err != nil {
		return DeleteResult{Source: s.source}, fmt.Errorf("delete event: %w", err)
	}
	return DeleteResult{Source: s.source, Deleted: true}, nil
}

// SetRSVP upserts the user's vote on the event and returns the event with
// refreshed aggregates. Any actor may RSVP to any event; the status is
// assumed validated by the caller.
func (s *Service) SetRSVP(ctx context.Context, userID, eventID string, status Status) (EventResult, error) {
	record, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return EventResult{}, err
	}

	if err := s.repo.UpsertRSVP(ctx, RSVP{EventID: eventID, UserID: userID, Status: status}); err != nil {
		return EventResult{}, fmt.Errorf("upsert rsvp: %w", err)
	}

	return s.refresh(ctx, *record, userID)
}

// GetHost returns the host's user ID, or ErrNotFound. Kept as a standalone
// lookup so callers that only need ownership don't pay for aggregates.
func (s *Service) GetHost(ctx context.Context, eventID string) (string, error) {
	record, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return "", err
	}
	return record.CreatedBy, nil
}

func (s *Service) refresh(ctx context.Context, record Record, userID string) (EventResult, error) {
	rsvps, err := s.repo.ListRSVPs(ctx, []string{record.ID})
	if err != nil {
		return EventResult{}, fmt.Errorf("list rsvps: %w", err)
	}
	item := buildItem(record, rsvps, userID)
	return EventResult{Source: s.source, Event: &item}, nil
}

func parseStartsAt(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ValidationError{Field: "startsAt", Message: "is required"}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ValidationError{Field: "startsAt", Message: "must be an ISO-8601 timestamp"}
	}
	return parsed.UTC(), nil
}
