package service

import (
	"context"
	"time"

	"planetaryhours"
	"planetaryhours/internal/astro"
	"planetaryhours/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Location manages the single stored observer location.
type Location interface {
	Set(ctx context.Context, p LocationParams) (planetaryhours.ObserverLocation, error)
	Get(ctx context.Context) (planetaryhours.ObserverLocation, error)
	Clear(ctx context.Context) error
	Presets() []Preset
	ApplyPreset(ctx context.Context, name string) (planetaryhours.ObserverLocation, error)
}

// Hours exposes planetary-hour computation and the persisted snapshot.
type Hours interface {
	Current(ctx context.Context, hourOffset int) (planetaryhours.PlanetaryHour, error)
	Snapshot(ctx context.Context) (planetaryhours.PlanetaryHour, error)
}

// EventLog exposes the append-only computation log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]planetaryhours.ComputationEvent, error)
}

// Refresher runs the background loop that keeps the stored hour current.
// Stop via context cancellation in main() for graceful shutdown.
type Refresher interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Location
	Hours
	EventLog
	Refresher
	Authorization
}

// Settings carries the config-driven knobs the services need.
type Settings struct {
	UTCOffsetHours float64
	SigningKey     string
	Presets        []Preset
}

func NewService(repos *repository.Repository, engine *astro.Engine, cfg Settings) *Service {
	hours := NewHoursService(repos.LocationRepo, repos.HourRepo, engine, cfg.UTCOffsetHours)
	return &Service{
		Location:      NewLocationService(repos.LocationRepo, repos.EventRepo, cfg.Presets),
		Hours:         hours,
		EventLog:      NewEventLogService(repos.EventRepo),
		Refresher:     NewRefresherService(hours, repos.HourRepo, repos.EventRepo),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey),
	}
}
