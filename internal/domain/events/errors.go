package events

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no event exists with the given ID.
	ErrNotFound = errors.New("event not found")

	// ErrForbidden means the acting user is not the event's host. Kept
	// distinct from ErrNotFound so callers can map 403 vs 404 without a
	// second host lookup.
	ErrForbidden = errors.New("only the event host may modify this event")
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
