package events

import "context"

// Repository is the per-backend persistence contract. The postgres and
// in-memory implementations both satisfy it; the service composes operations
// on top and never branches on backend.
type Repository interface {
	// ListEvents returns all stored events sorted ascending by start time.
	ListEvents(ctx context.Context) ([]Record, error)

	// GetEvent returns ErrNotFound when no event has the given ID.
	GetEvent(ctx context.Context, id string) (*Record, error)

	CreateEvent(ctx context.Context, record Record) error

	// SaveEvent overwrites the stored record in full. ErrNotFound when the
	// event no longer exists.
	SaveEvent(ctx context.Context, record Record) error

	// DeleteEvent removes the event permanently. RSVP rows for the event go
	// with it. ErrNotFound when the event does not exist.
	DeleteEvent(ctx context.Context, id string) error

	// ListRSVPs returns every vote for the given events.
	ListRSVPs(ctx context.Context, eventIDs []string) ([]RSVP, error)

	// UpsertRSVP stores the vote, replacing any previous vote by the same
	// user on the same event. ErrNotFound when the event does not exist.
	UpsertRSVP(ctx context.Context, rsvp RSVP) error
}
