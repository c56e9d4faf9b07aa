package lanterns

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	lanterns []Lantern
	replies  []Reply
}

func (r *stubRepo) ListLanterns(_ context.Context) ([]Lantern, error) {
	out := make([]Lantern, len(r.lanterns))
	copy(out, r.lanterns)
	return out, nil
}

func (r *stubRepo) GetLantern(_ context.Context, id string) (*Lantern, error) {
	for _, lantern := range r.lanterns {
		if lantern.ID == id {
			found := lantern
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *stubRepo) CreateLantern(_ context.Context, lantern Lantern) error {
	r.lanterns = append([]Lantern{lantern}, r.lanterns...)
	return nil
}

func (r *stubRepo) ListReplies(_ context.Context, lanternIDs []string) ([]Reply, error) {
	wanted := make(map[string]bool, len(lanternIDs))
	for _, id := range lanternIDs {
		wanted[id] = true
	}
	out := make([]Reply, 0)
	for _, reply := range r.replies {
		if wanted[reply.LanternID] {
			out = append(out, reply)
		}
	}
	return out, nil
}

func (r *stubRepo) CreateReply(_ context.Context, reply Reply) error {
	if _, err := r.GetLantern(context.Background(), reply.LanternID); err != nil {
		return err
	}
	r.replies = append(r.replies, reply)
	return nil
}

func newTestService() (*Service, *stubRepo) {
	repo := &stubRepo{}
	return NewService(repo, "memory"), repo
}

func TestCreateLantern(t *testing.T) {
	service, _ := newTestService()

	result, err := service.Create(context.Background(), CreateInput{
		MoodID:     "cozy",
		Text:       "  tea and a good book  ",
		AuthorName: "ember",
	})
	require.NoError(t, err)
	require.Equal(t, "memory", result.Source)
	require.NotEmpty(t, result.Lantern.ID)
	require.Equal(t, "cozy", result.Lantern.MoodID)
	require.Equal(t, "tea and a good book", result.Lantern.Text)
	require.Equal(t, "ember", result.Lantern.AuthorName)
	require.NotNil(t, result.Lantern.Replies)
	require.Empty(t, result.Lantern.Replies)
}

func TestCreateLanternDefaultsAuthor(t *testing.T) {
	service, _ := newTestService()

	result, err := service.Create(context.Background(), CreateInput{MoodID: "social", Text: "hello"})
	require.NoError(t, err)
	require.Equal(t, "anonymous", result.Lantern.AuthorName)
}

func TestCreateLanternUnknownMood(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Create(context.Background(), CreateInput{MoodID: "ecstatic", Text: "hello"})

	var validation ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "moodId", validation.Field)
}

func TestCreateLanternEmptyText(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Create(context.Background(), CreateInput{MoodID: "cozy", Text: "   "})

	var validation ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "text", validation.Field)
}

func TestCreateLanternTextTooLong(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Create(context.Background(), CreateInput{
		MoodID: "cozy",
		Text:   strings.Repeat("a", 81),
	})

	var validation ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "text", validation.Field)
}

func TestCreateLanternStripsMarkup(t *testing.T) {
	service, _ := newTestService()

	result, err := service.Create(context.Background(), CreateInput{
		MoodID: "cozy",
		Text:   "<b>bold</b> claim",
	})
	require.NoError(t, err)
	require.Equal(t, "bold claim", result.Lantern.Text)
}

func TestListStitchesReplies(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	now := time.Now().UTC()
	repo.lanterns = []Lantern{
		{ID: "b", MoodID: "cozy", Text: "second", CreatedAt: now},
		{ID: "a", MoodID: "social", Text: "first", CreatedAt: now.Add(-time.Hour)},
	}
	repo.replies = []Reply{
		{ID: "r1", LanternID: "a", Text: "hi", CreatedAt: now.Add(-30 * time.Minute)},
	}

	result, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, result.Lanterns, 2)
	require.Equal(t, "b", result.Lanterns[0].ID)
	// No replies still encodes as [] rather than null.
	require.NotNil(t, result.Lanterns[0].Replies)
	require.Empty(t, result.Lanterns[0].Replies)
	require.Len(t, result.Lanterns[1].Replies, 1)
	require.Equal(t, "r1", result.Lanterns[1].Replies[0].ID)
}

func TestReplyToLantern(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, CreateInput{MoodID: "anxious", Text: "big day tomorrow"})
	require.NoError(t, err)

	reply, err := service.Reply(ctx, created.Lantern.ID, ReplyInput{Text: "you got this", AuthorName: "sage"})
	require.NoError(t, err)
	require.Equal(t, created.Lantern.ID, reply.Reply.LanternID)
	require.Equal(t, "you got this", reply.Reply.Text)

	replies, err := service.Replies(ctx, created.Lantern.ID)
	require.NoError(t, err)
	require.Len(t, replies.Replies, 1)
}

func TestReplyToMissingLantern(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Reply(context.Background(), "missing", ReplyInput{Text: "hello"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = service.Replies(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
