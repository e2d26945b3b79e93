package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"planetaryhours"
)

type LocationSQLite struct {
	db *sql.DB
}

func NewLocationSQLite(db *sql.DB) *LocationSQLite {
	return &LocationSQLite{db: db}
}

var _ LocationRepo = (*LocationSQLite)(nil)

const (
	observerLocationRowID = 1

	upsertLocationSQL = `
		INSERT INTO observer_location (id, latitude, longitude, label, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			latitude=excluded.latitude,
			longitude=excluded.longitude,
			label=excluded.label,
			updated_at=excluded.updated_at
	`

	selectLocationSQL = `
		SELECT id, latitude, longitude, label, updated_at
		FROM observer_location WHERE id=?
	`

	deleteLocationSQL = `DELETE FROM observer_location WHERE id=?`
)

// Save upserts the single observer_location row (id always 1).
func (r *LocationSQLite) Save(ctx context.Context, l planetaryhours.ObserverLocation) error {
	tsUTC := l.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertLocationSQL,
		observerLocationRowID,
		l.Latitude,
		l.Longitude,
		l.Label,
		tsUTC,
	)
	return err
}

// Load fetches the single observer_location row. A missing row returns a
// zero value: both coordinates zero, the "unset" encoding.
func (r *LocationSQLite) Load(ctx context.Context) (planetaryhours.ObserverLocation, error) {
	row := r.db.QueryRowContext(ctx, selectLocationSQL, observerLocationRowID)

	var l planetaryhours.ObserverLocation
	if err := row.Scan(&l.ID, &l.Latitude, &l.Longitude, &l.Label, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return planetaryhours.ObserverLocation{}, nil // no location yet
		}
		return planetaryhours.ObserverLocation{}, err
	}
	l.UpdatedAt = l.UpdatedAt.UTC()

	return l, nil
}

// Clear removes the stored location, returning the observer to the
// "no location" state.
func (r *LocationSQLite) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, deleteLocationSQL, observerLocationRowID)
	return err
}
