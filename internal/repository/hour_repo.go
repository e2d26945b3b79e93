package repository

import (
	"context"
	"database/sql"
	"errors"

	"planetaryhours"
)

type HourSQLite struct {
	db *sql.DB
}

func NewHourSQLite(db *sql.DB) *HourSQLite {
	return &HourSQLite{db: db}
}

var _ HourRepo = (*HourSQLite)(nil)

const (
	hourStateRowID = 1

	upsertHourSQL = `
		INSERT INTO hour_state (id, ruler, ruler_abbrev, hour_index, chaldean_offset, night,
			start_at, end_at, period_start, period_end, hour_offset, computed_at, recompute_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ruler=excluded.ruler,
			ruler_abbrev=excluded.ruler_abbrev,
			hour_index=excluded.hour_index,
			chaldean_offset=excluded.chaldean_offset,
			night=excluded.night,
			start_at=excluded.start_at,
			end_at=excluded.end_at,
			period_start=excluded.period_start,
			period_end=excluded.period_end,
			hour_offset=excluded.hour_offset,
			computed_at=excluded.computed_at,
			recompute_after=excluded.recompute_after
	`

	selectHourSQL = `
		SELECT ruler, ruler_abbrev, hour_index, chaldean_offset, night,
			start_at, end_at, period_start, period_end, hour_offset, computed_at, recompute_after
		FROM hour_state WHERE id=?
	`
)

// Save upserts the single hour_state row (id always 1). Timestamps are
// stored as UTC; consumers re-localize for display.
func (r *HourSQLite) Save(ctx context.Context, h planetaryhours.PlanetaryHour) error {
	_, err := r.db.ExecContext(ctx, upsertHourSQL,
		hourStateRowID,
		h.Ruler,
		h.RulerAbbrev,
		h.Index,
		h.ChaldeanOffset,
		h.Night,
		h.Start.UTC(),
		h.End.UTC(),
		h.PeriodStart.UTC(),
		h.PeriodEnd.UTC(),
		h.HourOffset,
		h.ComputedAt.UTC(),
		h.RecomputeAfter.UTC(),
	)
	return err
}

// Load fetches the last computed snapshot. A missing row returns the
// zero value (ComputedAt zero means "never computed").
func (r *HourSQLite) Load(ctx context.Context) (planetaryhours.PlanetaryHour, error) {
	row := r.db.QueryRowContext(ctx, selectHourSQL, hourStateRowID)

	var h planetaryhours.PlanetaryHour
	if err := row.Scan(
		&h.Ruler,
		&h.RulerAbbrev,
		&h.Index,
		&h.ChaldeanOffset,
		&h.Night,
		&h.Start,
		&h.End,
		&h.PeriodStart,
		&h.PeriodEnd,
		&h.HourOffset,
		&h.ComputedAt,
		&h.RecomputeAfter,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return planetaryhours.PlanetaryHour{}, nil // no snapshot yet
		}
		return planetaryhours.PlanetaryHour{}, err
	}

	h.Start = h.Start.UTC()
	h.End = h.End.UTC()
	h.PeriodStart = h.PeriodStart.UTC()
	h.PeriodEnd = h.PeriodEnd.UTC()
	h.ComputedAt = h.ComputedAt.UTC()
	h.RecomputeAfter = h.RecomputeAfter.UTC()

	return h, nil
}
