package checkins

import (
	"context"
	"fmt"
)

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
	CreateCheckin(ctx context.Context, checkin Checkin) error

	// ListByUser returns the user's check-ins newest-first.
	ListByUser(ctx context.Context, userID string) ([]Checkin, error)
}
