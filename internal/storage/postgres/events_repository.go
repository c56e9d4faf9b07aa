package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mood-village/server/internal/domain/events"
)

const pgErrForeignKeyViolation = "23503"

type EventRepository struct {
	pool *pgxpool.Pool
}

var _ events.Repository = (*EventRepository)(nil)

const eventColumns = `id, title, description, starts_at, location, category, micro_event, created_by, created_at, updated_at`

func (r *EventRepository) ListEvents(ctx context.Context) ([]events.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+eventColumns+`
  FROM events
 ORDER BY starts_at ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	records := make([]events.Record, 0)
	for rows.Next() {
		record, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return records, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id string) (*events.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+eventColumns+`
  FROM events
 WHERE id = $1
`, id)

	record, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, events.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &record, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, record events.Record) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO events (id, title, description, starts_at, location, category, micro_event, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`,
		record.ID,
		record.Title,
		record.Description,
		record.StartsAt,
		record.Location,
		record.Category,
		record.MicroEvent,
		record.CreatedBy,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) SaveEvent(ctx context.Context, record events.Record) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE events
   SET title = $2, description = $3, starts_at = $4, location = $5,
       category = $6, micro_event = $7, updated_at = $8
 WHERE id = $1
`,
		record.ID,
		record.Title,
		record.Description,
		record.StartsAt,
		record.Location,
		record.Category,
		record.MicroEvent,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	// event_rsvps rows go with the event via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventRepository) ListRSVPs(ctx context.Context, eventIDs []string) ([]events.RSVP, error) {
	if len(eventIDs) == 0 {
		return []events.RSVP{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT event_id, user_id, status
  FROM event_rsvps
 WHERE event_id = ANY($1::text[])
 ORDER BY event_id ASC, user_id ASC
`, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	defer rows.Close()

	rsvps := make([]events.RSVP, 0)
	for rows.Next() {
		var rsvp events.RSVP
		var status string
		if err := rows.Scan(&rsvp.EventID, &rsvp.UserID, &status); err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		parsed, ok := events.ParseStatus(status)
		if !ok {
			continue
		}
		rsvp.Status = parsed
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	return rsvps, nil
}

func (r *EventRepository) UpsertRSVP(ctx context.Context, rsvp events.RSVP) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO event_rsvps (event_id, user_id, status, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
ON CONFLICT (event_id, user_id)
DO UPDATE SET status = EXCLUDED.status, updated_at = now()
`,
		rsvp.EventID,
		rsvp.UserID,
		string(rsvp.Status),
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
		return events.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("upsert rsvp: %w", err)
	}
	return nil
}

func scanEvent(row pgx.Row) (events.Record, error) {
	var record events.Record
	err := row.Scan(
		&record.ID,
		&record.Title,
		&record.Description,
		&record.StartsAt,
		&record.Location,
		&record.Category,
		&record.MicroEvent,
		&record.CreatedBy,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	return record, err
}
