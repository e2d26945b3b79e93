package service

import (
	"context"
	"errors"
	"time"

	"planetaryhours"
	"planetaryhours/internal/astro"
	"planetaryhours/internal/repository"
)

// ErrNoLocation means no observer location is stored, so nothing can be
// computed.
var ErrNoLocation = errors.New("no observer location set")

// HoursService computes the planetary hour for "now" (optionally shifted
// by whole hours) and serves the persisted snapshot.
type HoursService struct {
	locationRepo repository.LocationRepo
	hourRepo     repository.HourRepo
	engine       *astro.Engine
	utcOffset    float64

	now func() time.Time // injectable clock
}

func NewHoursService(locationRepo repository.LocationRepo, hourRepo repository.HourRepo, engine *astro.Engine, utcOffsetHours float64) *HoursService {
	return &HoursService{
		locationRepo: locationRepo,
		hourRepo:     hourRepo,
		engine:       engine,
		utcOffset:    utcOffsetHours,
		now:          time.Now,
	}
}

// Current computes the planetary hour containing now + hourOffset hours.
// Offsets past midnight simply land in the adjacent day's periods.
// Returns ErrNoLocation when no location is stored and
// astro.ErrNoPlanetaryHour when sun times are unavailable there.
func (s *HoursService) Current(ctx context.Context, hourOffset int) (planetaryhours.PlanetaryHour, error) {
	loc, err := s.locationRepo.Load(ctx)
	if err != nil {
		return planetaryhours.PlanetaryHour{}, err
	}
	if !loc.IsSet() {
		return planetaryhours.PlanetaryHour{}, ErrNoLocation
	}

	now := s.now()
	target := now.Add(time.Duration(hourOffset) * time.Hour)

	h, err := s.engine.Compute(target, loc.Latitude, loc.Longitude, s.utcOffset)
	if err != nil {
		return planetaryhours.PlanetaryHour{}, err
	}

	return planetaryhours.PlanetaryHour{
		Ruler:          h.Ruler.Name,
		RulerAbbrev:    h.Ruler.Abbrev,
		Index:          h.Index,
		ChaldeanOffset: h.ChaldeanOffset,
		Night:          h.Night,
		Start:          h.Start,
		End:            h.End,
		PeriodStart:    h.Period.Start,
		PeriodEnd:      h.Period.End,
		HourOffset:     hourOffset,
		ComputedAt:     now.UTC(),
		RecomputeAfter: astro.NextRecomputeAfter(h.End),
	}, nil
}

// Snapshot returns the last persisted hour. ComputedAt zero means the
// refresher has not run yet.
func (s *HoursService) Snapshot(ctx context.Context) (planetaryhours.PlanetaryHour, error) {
	return s.hourRepo.Load(ctx)
}
