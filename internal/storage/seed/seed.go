// Package seed loads demo fixtures through the repository interfaces, so the
// same data works against either backend.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/mood-village/server/internal/domain/events"
	"github.com/mood-village/server/internal/domain/lanterns"
)

const seedHost = "community-team"

// Apply inserts the demo events, lanterns, and replies. IDs are fixed, so
// re-seeding a postgres database fails on the duplicate keys rather than
// doubling the fixtures.
func Apply(ctx context.Context, eventsRepo events.Repository, lanternsRepo lanterns.Repository) error {
	now := time.Now().UTC()

	for _, record := range Events(now) {
		if err := eventsRepo.CreateEvent(ctx, record); err != nil {
			return fmt.Errorf("seed event %s: %w", record.ID, err)
		}
	}
	for _, lantern := range Lanterns(now) {
		if err := lanternsRepo.CreateLantern(ctx, lantern); err != nil {
			return fmt.Errorf("seed lantern %s: %w", lantern.ID, err)
		}
	}
	for _, reply := range Replies(now) {
		if err := lanternsRepo.CreateReply(ctx, reply); err != nil {
			return fmt.Errorf("seed reply %s: %w", reply.ID, err)
		}
	}
	return nil
}

// Events returns the fixture events, with start times relative to now.
func Events(now time.Time) []events.Record {
	return []events.Record{
		{
			ID:          "c1f3a9d2-5b84-4e0f-9c27-6e1d84a0b3f1",
			Title:       "Sunrise walk by the harbor",
			Description: "Gentle pace, all welcome. We meet at the pier and walk for about an hour.",
			StartsAt:    now.AddDate(0, 0, 3).Truncate(time.Hour),
			Location:    "Harbor Pier",
			Category:    "Movement",
			MicroEvent:  true,
			CreatedBy:   seedHost,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "7a2e60c4-1f9b-48d3-8b55-0c3db12f77e9",
			Title:       "Tea & board games",
			Description: "Low-key evening in the community room. Bring a favorite game if you have one.",
			StartsAt:    now.AddDate(0, 0, 5).Truncate(time.Hour),
			Location:    "Community Room B",
			Category:    "General",
			CreatedBy:   seedHost,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "f08d2c11-93aa-41be-b2a4-5dd0e6c4a972",
			Title:       "Reflection circle",
			Description: "A guided hour of sharing and listening. No pressure to speak.",
			StartsAt:    now.AddDate(0, 0, 8).Truncate(time.Hour),
			Location:    "Garden Pavilion",
			Category:    "Wellness",
			CreatedBy:   seedHost,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// Lanterns returns the fixture lanterns.
func Lanterns(now time.Time) []lanterns.Lantern {
	return []lanterns.Lantern{
		{ID: "01HK5T2M8PXW4QZRB1N3VCEG7A", MoodID: "cozy", Text: "wrapped in a blanket watching rain", AuthorName: "ember", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "01HK5T2M8PXW4QZRB1N3VCEG7B", MoodID: "anxious", Text: "cant stop thinking about tomorrow", AuthorName: "cloud", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "01HK5T2M8PXW4QZRB1N3VCEG7C", MoodID: "focused", Text: "deep in the code zone right now", AuthorName: "pixel", CreatedAt: now.Add(-4 * time.Hour)},
		{ID: "01HK5T2M8PXW4QZRB1N3VCEG7D", MoodID: "low-energy", Text: "everything feels heavy today", AuthorName: "moth", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "01HK5T2M8PXW4QZRB1N3VCEG7E", MoodID: "social", Text: "had the best coffee chat with a friend", AuthorName: "fern", CreatedAt: now.Add(-6 * time.Hour)},
	}
}

// Replies returns the fixture replies.
func Replies(now time.Time) []lanterns.Reply {
	return []lanterns.Reply{
		{ID: "01HK5T2M8PXW4QZRB1N3VCEH1A", LanternID: "01HK5T2M8PXW4QZRB1N3VCEG7A", Text: "that sounds so peaceful", AuthorName: "willow", CreatedAt: now.Add(-90 * time.Minute)},
		{ID: "01HK5T2M8PXW4QZRB1N3VCEH1B", LanternID: "01HK5T2M8PXW4QZRB1N3VCEG7C", Text: "you got this!", AuthorName: "sage", CreatedAt: now.Add(-200 * time.Minute)},
		{ID: "01HK5T2M8PXW4QZRB1N3VCEH1C", LanternID: "01HK5T2M8PXW4QZRB1N3VCEG7E", Text: "those moments are the best", AuthorName: "ember", CreatedAt: now.Add(-5 * time.Hour)},
	}
}
