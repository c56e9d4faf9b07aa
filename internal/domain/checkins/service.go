package checkins

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mood-village/server/internal/domain/ids"
	"github.com/mood-village/server/internal/sanitize"
)

const (
	maxNoteLength = 280
	trendWeeks    = 12
)

type Service struct {
	repo   Repository
	source string
	now    func() time.Time
}

func NewService(repo Repository, source string) *Service {
	return &Service{repo: repo, source: source, now: time.Now}
}

// Create records one check-in for userID. Mood must be 1..5; energy must be
// low/medium/high; the note is optional, trimmed and sanitized.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (CheckinResult, error) {
	if input.Mood < 1 || input.Mood > 5 {
		return CheckinResult{}, ValidationError{Field: "mood", Message: "must be between 1 and 5"}
	}
	energy, ok := ParseEnergy(input.Energy)
	if !ok {
		return CheckinResult{}, ValidationError{Field: "energy", Message: "must be one of low, medium, high"}
	}

	note := strings.TrimSpace(sanitize.Text(input.Note))
	if len([]rune(note)) > maxNoteLength {
		return CheckinResult{}, ValidationError{Field: "note", Message: fmt.Sprintf("must be at most %d characters", maxNoteLength)}
	}

	id, err := ids.NewULID()
	if err != nil {
		return CheckinResult{}, fmt.Errorf("mint checkin id: %w", err)
	}

	checkin := Checkin{
		ID:        id,
		UserID:    userID,
		Mood:      input.Mood,
		Energy:    energy,
		Note:      note,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.CreateCheckin(ctx, checkin); err != nil {
		return CheckinResult{}, fmt.Errorf("create checkin: %w", err)
	}
	return CheckinResult{Source: s.source, Checkin: &checkin}, nil
}

// History returns the caller's check-ins newest-first.
func (s *Service) History(ctx context.Context, userID string) (HistoryResult, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("list checkins: %w", err)
	}
	return HistoryResult{Source: s.source, Checkins: items}, nil
}

// Summarize derives the progress dashboard numbers from the caller's
// check-in history: a 12-week mood trend and per-weekday activity over the
// last seven days. Nothing is stored; aggregates are computed on read.
func (s *Service) Summarize(ctx context.Context, userID string) (Summary, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Summary{}, fmt.Errorf("list checkins: %w", err)
	}

	now := s.now().UTC()
	return Summary{
		Source:   s.source,
		Trend:    moodTrend(items, now),
		Activity: weekdayActivity(items, now),
	}, nil
}

// moodTrend buckets check-ins into ISO weeks (Monday start) and averages the
// mood score per week, covering the trendWeeks most recent weeks. Weeks with
// no check-ins are omitted.
func moodTrend(items []Checkin, now time.Time) []WeekPoint {
	horizon := startOfWeek(now).AddDate(0, 0, -7*(trendWeeks-1))

	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, item := range items {
		week := startOfWeek(item.CreatedAt.UTC())
		if week.Before(horizon) {
			continue
		}
		b, ok := buckets[week]
		if !ok {
			b = &bucket{}
			buckets[week] = b
		}
		b.sum += item.Mood
		b.count++
	}

	points := make([]WeekPoint, 0, len(buckets))
	for week, b := range buckets {
		points = append(points, WeekPoint{
			WeekStart: week,
			Average:   float64(b.sum) / float64(b.count),
			Count:     b.count,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].WeekStart.Before(points[j].WeekStart) })
	return points
}

// weekdayActivity counts check-ins per weekday over the last seven days,
// always returning all seven labels Monday through Sunday.
func weekdayActivity(items []Checkin, now time.Time) []DayCount {
	cutoff := now.AddDate(0, 0, -7)
	counts := make(map[time.Weekday]int)
	for _, item := range items {
		created := item.CreatedAt.UTC()
		if created.Before(cutoff) || created.After(now) {
			continue
		}
		counts[created.Weekday()]++
	}

	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make([]DayCount, 0, len(order))
	for _, day := range order {
		out = append(out, DayCount{Weekday: day.String()[:3], Count: counts[day]})
	}
	return out
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
