package repository

import (
	"context"
	"database/sql"
	"time"

	"planetaryhours"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*planetaryhours.User, error)
}

// LocationRepo persists the single observer location (row id=1).
type LocationRepo interface {
	Save(ctx context.Context, l planetaryhours.ObserverLocation) error
	Load(ctx context.Context) (planetaryhours.ObserverLocation, error)
	Clear(ctx context.Context) error
}

// HourRepo persists the last computed planetary-hour snapshot (row id=1).
type HourRepo interface {
	Save(ctx context.Context, h planetaryhours.PlanetaryHour) error
	Load(ctx context.Context) (planetaryhours.PlanetaryHour, error)
}

// EventRepo is the append-only computation log with filtered access.
type EventRepo interface {
	Append(ctx context.Context, e planetaryhours.ComputationEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]planetaryhours.ComputationEvent, error)
}

type Repository struct {
	LocationRepo LocationRepo
	HourRepo     HourRepo
	EventRepo    EventRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		LocationRepo: NewLocationSQLite(db),
		HourRepo:     NewHourSQLite(db),
		EventRepo:    NewEventSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
