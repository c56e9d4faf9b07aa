package memory

import (
	"context"

	"github.com/mood-village/server/internal/storage/seed"
)

// Seed loads the demo fixtures. Meant to be called once, right after
// NewStore; tests that want a clean slate simply don't call it.
func (s *Store) Seed() {
	// Inserting into a fresh in-memory store cannot fail.
	_ = seed.Apply(context.Background(), s.events, s.lanterns)
}
