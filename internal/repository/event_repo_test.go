package repository_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"planetaryhours"
	"planetaryhours/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEventSQLite_Append_FillsIDAndTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewEventSQLite(db)

	isNonEmptyString := sqlmockArgumentFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		return ok && s != ""
	})
	looksLikeTimestamp := sqlmockArgumentFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := time.Parse("2006-01-02 15:04:05", s)
		return err == nil
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO computation_events")).
		WithArgs(
			isNonEmptyString,   // generated uuid
			looksLikeTimestamp, // filled occurred_at
			"HOUR_ROLLOVER",    // normalized type
			"entered hour of Venus",
			nil, // no metadata
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ev := planetaryhours.ComputationEvent{
		Type:        " hour_rollover ",
		Description: "entered hour of Venus",
	}
	if err := repo.Append(context.Background(), ev); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventSQLite_Append_MarshalsMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewEventSQLite(db)

	at := time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO computation_events")).
		WithArgs(
			"evt-1",
			"2024-06-21 10:00:00",
			"LOCATION_SET",
			"location set to nyc",
			`{"latitude":40.71}`,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ev := planetaryhours.ComputationEvent{
		EventID:     "evt-1",
		OccurredAt:  at,
		Type:        "LOCATION_SET",
		Description: "location set to nyc",
		Metadata:    map[string]any{"latitude": 40.71},
	}
	if err := repo.Append(context.Background(), ev); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventSQLite_List_BuildsFiltersAndScans(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewEventSQLite(db)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "type", "message", "meta"}).
		AddRow("evt-1", time.Date(2024, 6, 21, 10, 0, 0, 0, time.UTC), "HOUR_ROLLOVER", "entered hour of Venus", `{"index":0}`).
		AddRow("evt-2", time.Date(2024, 6, 21, 11, 15, 0, 0, time.UTC), "HOUR_ROLLOVER", "entered hour of Mercury", nil)

	mock.ExpectQuery(regexp.QuoteMeta("occurred_at >= ? AND occurred_at <= ? AND type = ?")).
		WithArgs(from, to, "HOUR_ROLLOVER").
		WillReturnRows(rows)

	events, err := repo.List(context.Background(), from, to, "hour_rollover")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].EventID != "evt-1" || events[1].EventID != "evt-2" {
		t.Fatalf("unexpected order: %+v", events)
	}
	meta, ok := events[0].Metadata.(map[string]any)
	if !ok || meta["index"] != float64(0) {
		t.Fatalf("metadata not unmarshaled: %#v", events[0].Metadata)
	}
	if events[1].Metadata != nil {
		t.Fatalf("expected nil metadata, got %#v", events[1].Metadata)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventSQLite_List_NoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewEventSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, occurred_at, type, message, meta FROM computation_events ORDER BY occurred_at ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "occurred_at", "type", "message", "meta"}))

	events, err := repo.List(context.Background(), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("got %d events, want 0", len(events))
	}
}
