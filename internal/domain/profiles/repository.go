package profiles

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound means no profile row exists for the user yet.
var ErrNotFound = errors.New("profile not found")

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
	// GetProfile returns ErrNotFound when the user has no stored profile.
	GetProfile(ctx context.Context, userID string) (*Profile, error)

	// UpsertProfile writes the full profile row, inserting on first write.
	UpsertProfile(ctx context.Context, profile Profile) error
}
