package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if no known layout matches.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*Event, error) {
	var event Event
	var notes sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&event.ID, &event.Date, &event.Title, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if notes.Valid {
		event.Notes = &notes.String
	}
	event.CreatedAt = parseTimestamp(createdAt)
	event.UpdatedAt = parseTimestamp(updatedAt)
	return &event, nil
}

const eventColumns = `id, date, title, notes, created_at, updated_at`

// =============================================================================
// Event Queries
// =============================================================================

// CreateEvent inserts event and fills in its ID and timestamps.
func (db *DB) CreateEvent(ctx context.Context, event *Event) error {
	result, err := db.ExecContext(ctx,
		`INSERT INTO events (date, title, notes) VALUES (?, ?, ?)`,
		event.Date, event.Title, event.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get event id: %w", err)
	}

	stored, err := db.GetEventByID(ctx, id)
	if err != nil {
		return fmt.Errorf("reload event: %w", err)
	}
	*event = *stored
	return nil
}

// InsertEvent inserts event inside the transaction and sets its ID. Bulk
// loaders use it so a bad row rolls back the whole batch.
func (tx *Tx) InsertEvent(ctx context.Context, event *Event) error {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO events (date, title, notes) VALUES (?, ?, ?)`,
		event.Date, event.Title, event.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert event on %s: %w", event.Date, err)
	}

	event.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get event id: %w", err)
	}
	return nil
}

// GetEventByID returns ErrNotFound if no event has the given ID.
func (db *DB) GetEventByID(ctx context.Context, id int64) (*Event, error) {
	row := db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query event %d: %w", id, err)
	}
	return event, nil
}

// ListEventsByDateRange returns the events of [startDate, endDate]
// (YYYY-MM-DD, inclusive) ordered by date then ID. An empty range yields an
// empty slice.
func (db *DB) ListEventsByDateRange(ctx context.Context, startDate, endDate string) ([]Event, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("query events by range: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, nil
}

// DeleteEvent removes an event. Returns ErrNotFound if it does not exist.
func (db *DB) DeleteEvent(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// PruneEventsOutside deletes every event dated before firstDate or after
// lastDate and returns how many were removed.
func (db *DB) PruneEventsOutside(ctx context.Context, firstDate, lastDate string) (int64, error) {
	var removed int64
	err := db.WithTx(ctx, func(tx *Tx) error {
		result, err := tx.ExecContext(ctx,
			`DELETE FROM events WHERE date < ? OR date > ?`,
			firstDate, lastDate,
		)
		if err != nil {
			return fmt.Errorf("prune events: %w", err)
		}
		removed, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// GetEventStats returns counts and the date span of stored events.
func (db *DB) GetEventStats(ctx context.Context) (*EventStats, error) {
	var stats EventStats
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MIN(date), ''), COALESCE(MAX(date), '')
		FROM events
	`).Scan(&stats.TotalEvents, &stats.EarliestDate, &stats.LatestDate)
	if err != nil {
		return nil, fmt.Errorf("query event stats: %w", err)
	}
	return &stats, nil
}
