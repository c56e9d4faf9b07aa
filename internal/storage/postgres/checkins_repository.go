package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mood-village/server/internal/domain/checkins"
)

type CheckinRepository struct {
	pool *pgxpool.Pool
}

var _ checkins.Repository = (*CheckinRepository)(nil)

func (r *CheckinRepository) CreateCheckin(ctx context.Context, checkin checkins.Checkin) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO checkins (id, user_id, mood, energy, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`,
		checkin.ID,
		checkin.UserID,
		checkin.Mood,
		string(checkin.Energy),
		checkin.Note,
		checkin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert checkin: %w", err)
	}
	return nil
}

func (r *CheckinRepository) ListByUser(ctx context.Context, userID string) ([]checkins.Checkin, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, mood, energy, note, created_at
  FROM checkins
 WHERE user_id = $1
 ORDER BY created_at DESC, id DESC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	defer rows.Close()

	items := make([]checkins.Checkin, 0)
	for rows.Next() {
		var checkin checkins.Checkin
		var energy string
		if err := rows.Scan(&checkin.ID, &checkin.UserID, &checkin.Mood, &energy, &checkin.Note, &checkin.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan checkin: %w", err)
		}
		parsed, ok := checkins.ParseEnergy(energy)
		if !ok {
			parsed = checkins.EnergyMedium
		}
		checkin.Energy = parsed
		items = append(items, checkin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	return items, nil
}
