package lanterns

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound means no lantern exists with the given ID.
var ErrNotFound = errors.New("lantern not found")

// ValidationError reports a rejected input field before any storage call.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

type Repository interface {
	// ListLanterns returns all lanterns newest-first, without replies.
	ListLanterns(ctx context.Context) ([]Lantern, error)

	// GetLantern returns ErrNotFound when no lantern has the given ID.
	GetLantern(ctx context.Context, id string) (*Lantern, error)

	CreateLantern(ctx context.Context, lantern Lantern) error

	// ListReplies returns every reply for the given lanterns, oldest-first.
	ListReplies(ctx context.Context, lanternIDs []string) ([]Reply, error)

	// CreateReply returns ErrNotFound when the parent lantern is missing.
	CreateReply(ctx context.Context, reply Reply) error
}
