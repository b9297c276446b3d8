package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// GestureEvent is one recognized gesture, logged for the history view.
type GestureEvent struct {
	ID        string
	Kind      string
	Detail    string
	X         int
	Y         int
	CreatedAt time.Time
}

// EventRepository provides access to the gesture event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the gesture event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Create inserts a new gesture event into the database.
func (r *EventRepository) Create(e *GestureEvent) error {
	e.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO gesture_events (id, kind, detail, x, y, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Kind, e.Detail, e.X, e.Y, e.CreatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a gesture event by its ID.
func (r *EventRepository) GetByID(id string) (*GestureEvent, error) {
	e := &GestureEvent{}

	err := r.db.QueryRow(
		`SELECT id, kind, detail, x, y, created_at
		 FROM gesture_events WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Kind, &e.Detail, &e.X, &e.Y, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return e, nil
}

// ListRecent retrieves the most recent gesture events, newest first.
// A limit of zero or less falls back to 50.
func (r *EventRepository) ListRecent(limit int) ([]*GestureEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, kind, detail, x, y, created_at
		 FROM gesture_events ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*GestureEvent
	for rows.Next() {
		e := &GestureEvent{}

		err := rows.Scan(&e.ID, &e.Kind, &e.Detail, &e.X, &e.Y, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// PurgeBefore deletes all events older than the given time and reports
// how many rows were removed.
func (r *EventRepository) PurgeBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM gesture_events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
