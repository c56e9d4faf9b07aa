package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mood-village/server/internal/domain/profiles"
)

const profileColumns = `user_id, name, avatar_url, trusted_contact_name, trusted_contact_phone,
       notification_events, notification_village, notification_push,
       dark_mode, data_visibility, community_id, created_at, updated_at`

type ProfileRepository struct {
	pool *pgxpool.Pool
}

var _ profiles.Repository = (*ProfileRepository)(nil)

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*profiles.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+profileColumns+`
  FROM profiles
 WHERE user_id = $1
`, userID)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profiles.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile profiles.Profile) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO profiles (`+profileColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (user_id) DO UPDATE SET
	name                  = EXCLUDED.name,
	avatar_url            = EXCLUDED.avatar_url,
	trusted_contact_name  = EXCLUDED.trusted_contact_name,
	trusted_contact_phone = EXCLUDED.trusted_contact_phone,
	notification_events   = EXCLUDED.notification_events,
	notification_village  = EXCLUDED.notification_village,
	notification_push     = EXCLUDED.notification_push,
	dark_mode             = EXCLUDED.dark_mode,
	data_visibility       = EXCLUDED.data_visibility,
	community_id          = EXCLUDED.community_id,
	updated_at            = EXCLUDED.updated_at
`,
		profile.UserID,
		profile.Name,
		profile.AvatarURL,
		profile.TrustedContactName,
		profile.TrustedContactPhone,
		profile.NotificationEvents,
		profile.NotificationVillage,
		profile.NotificationPush,
		profile.DarkMode,
		profile.DataVisibility,
		profile.CommunityID,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func scanProfile(row pgx.Row) (profiles.Profile, error) {
	var profile profiles.Profile
	err := row.Scan(
		&profile.UserID,
		&profile.Name,
		&profile.AvatarURL,
		&profile.TrustedContactName,
		&profile.TrustedContactPhone,
		&profile.NotificationEvents,
		&profile.NotificationVillage,
		&profile.NotificationPush,
		&profile.DarkMode,
		&profile.DataVisibility,
		&profile.CommunityID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	return profile, err
}
