package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mood-village/server/internal/domain/lanterns"
)

type LanternRepository struct {
	pool *pgxpool.Pool
}

var _ lanterns.Repository = (*LanternRepository)(nil)

func (r *LanternRepository) ListLanterns(ctx context.Context) ([]lanterns.Lantern, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, mood_id, text, author_name, created_at
  FROM lanterns
 ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list lanterns: %w", err)
	}
	defer rows.Close()

	items := make([]lanterns.Lantern, 0)
	for rows.Next() {
		var lantern lanterns.Lantern
		if err := rows.Scan(&lantern.ID, &lantern.MoodID, &lantern.Text, &lantern.AuthorName, &lantern.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lantern: %w", err)
		}
		items = append(items, lantern)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lanterns: %w", err)
	}
	return items, nil
}

func (r *LanternRepository) GetLantern(ctx context.Context, id string) (*lanterns.Lantern, error) {
	var lantern lanterns.Lantern
	err := r.pool.QueryRow(ctx, `
SELECT id, mood_id, text, author_name, created_at
  FROM lanterns
 WHERE id = $1
`, id).Scan(&lantern.ID, &lantern.MoodID, &lantern.Text, &lantern.AuthorName, &lantern.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, lanterns.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lantern: %w", err)
	}
	return &lantern, nil
}

func (r *LanternRepository) CreateLantern(ctx context.Context, lantern lanterns.Lantern) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO lanterns (id, mood_id, text, author_name, created_at)
VALUES ($1, $2, $3, $4, $5)
`,
		lantern.ID,
		lantern.MoodID,
		lantern.Text,
		lantern.AuthorName,
		lantern.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lantern: %w", err)
	}
	return nil
}

func (r *LanternRepository) ListReplies(ctx context.Context, lanternIDs []string) ([]lanterns.Reply, error) {
	if len(lanternIDs) == 0 {
		return []lanterns.Reply{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, lantern_id, text, author_name, created_at
  FROM lantern_replies
 WHERE lantern_id = ANY($1::text[])
 ORDER BY created_at ASC, id ASC
`, lanternIDs)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	defer rows.Close()

	replies := make([]lanterns.Reply, 0)
	for rows.Next() {
		var reply lanterns.Reply
		if err := rows.Scan(&reply.ID, &reply.LanternID, &reply.Text, &reply.AuthorName, &reply.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reply: %w", err)
		}
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return replies, nil
}

func (r *LanternRepository) CreateReply(ctx context.Context, reply lanterns.Reply) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO lantern_replies (id, lantern_id, text, author_name, created_at)
VALUES ($1, $2, $3, $4, $5)
`,
		reply.ID,
		reply.LanternID,
		reply.Text,
		reply.AuthorName,
		reply.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
		return lanterns.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("insert reply: %w", err)
	}
	return nil
}
