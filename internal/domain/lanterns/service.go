package lanterns

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mood-village/server/internal/domain/ids"
	"github.com/mood-village/server/internal/domain/moods"
	"github.com/mood-village/server/internal/sanitize"
)

// Text limits match the release form in the web client.
const (
	maxTextLength   = 80
	defaultAuthor   = "anonymous"
	maxAuthorLength = 40
)

type Service struct {
	repo   Repository
	source string
	now    func() time.Time
}

func NewService(repo Repository, source string) *Service {
	return &Service{repo: repo, source: source, now: time.Now}
}

// List returns all lanterns newest-first, each carrying its replies
// oldest-first.
func (s *Service) List(ctx context.Context) (ListResult, error) {
	items, err := s.repo.ListLanterns(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("list lanterns: %w", err)
	}

	lanternIDs := make([]string, 0, len(items))
	for _, lantern := range items {
		lanternIDs = append(lanternIDs, lantern.ID)
	}

	replies, err := s.repo.ListReplies(ctx, lanternIDs)
	if err != nil {
		return ListResult{}, fmt.Errorf("list replies: %w", err)
	}

	byLantern := make(map[string][]Reply, len(items))
	for _, reply := range replies {
		byLantern[reply.LanternID] = append(byLantern[reply.LanternID], reply)
	}

	for i := range items {
		attached := byLantern[items[i].ID]
		if attached == nil {
			attached = make([]Reply, 0)
		}
		items[i].Replies = attached
	}

	return ListResult{Source: s.source, Lanterns: items}, nil
}

// Create releases a new lantern. The mood must exist in the catalog, the
// note must be non-empty after trimming and fit the release form's limit,
// and all free text is sanitized before it touches storage.
func (s *Service) Create(ctx context.Context, input CreateInput) (LanternResult, error) {
	if _, ok := moods.ByID(input.MoodID); !ok {
		return LanternResult{}, ValidationError{Field: "moodId", Message: "unknown mood"}
	}

	text, err := cleanText(input.Text)
	if err != nil {
		return LanternResult{}, err
	}

	id, err := ids.NewULID()
	if err != nil {
		return LanternResult{}, fmt.Errorf("mint lantern id: %w", err)
	}

	lantern := Lantern{
		ID:         id,
		MoodID:     input.MoodID,
		Text:       text,
		AuthorName: cleanAuthor(input.AuthorName),
		CreatedAt:  s.now().UTC(),
		Replies:    make([]Reply, 0),
	}

	if err := s.repo.CreateLantern(ctx, lantern); err != nil {
		return LanternResult{}, fmt.Errorf("create lantern: %w", err)
	}
	return LanternResult{Source: s.source, Lantern: &lantern}, nil
}

// Replies returns the conversation under one lantern, oldest-first.
func (s *Service) Replies(ctx context.Context, lanternID string) (RepliesResult, error) {
	if _, err := s.repo.GetLantern(ctx, lanternID); err != nil {
		return RepliesResult{}, err
	}

	replies, err := s.repo.ListReplies(ctx, []string{lanternID})
	if err != nil {
		return RepliesResult{}, fmt.Errorf("list replies: %w", err)
	}
	return RepliesResult{Source: s.source, Replies: replies}, nil
}

// Reply adds a response under an existing lantern.
func (s *Service) Reply(ctx context.Context, lanternID string, input ReplyInput) (ReplyResult, error) {
	if _, err := s.repo.GetLantern(ctx, lanternID); err != nil {
		return ReplyResult{}, err
	}

	text, err := cleanText(input.Text)
	if err != nil {
		return ReplyResult{}, err
	}

	id, err := ids.NewULID()
	if err != nil {
		return ReplyResult{}, fmt.Errorf("mint reply id: %w", err)
	}

	reply := Reply{
		ID:         id,
		LanternID:  lanternID,
		Text:       text,
		AuthorName: cleanAuthor(input.AuthorName),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.CreateReply(ctx, reply); err != nil {
		return ReplyResult{}, fmt.Errorf("create reply: %w", err)
	}
	return ReplyResult{Source: s.source, Reply: &reply}, nil
}

func cleanText(value string) (string, error) {
	text := strings.TrimSpace(sanitize.Text(value))
	if text == "" {
		return "", ValidationError{Field: "text", Message: "must not be empty"}
	}
	if len([]rune(text)) > maxTextLength {
		return "", ValidationError{Field: "text", Message: fmt.Sprintf("must be at most %d characters", maxTextLength)}
	}
	return text, nil
}

func cleanAuthor(value string) string {
	author := strings.TrimSpace(sanitize.Text(value))
	if author == "" {
		return defaultAuthor
	}
	if len([]rune(author)) > maxAuthorLength {
		author = string([]rune(author)[:maxAuthorLength])
	}
	return author
}
