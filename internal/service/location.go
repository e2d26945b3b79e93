package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"planetaryhours"
	"planetaryhours/internal/repository"

	"github.com/google/uuid"
)

var (
	errInvalidLatitude  = errors.New("invalid latitude: must be within [-90, 90]")
	errInvalidLongitude = errors.New("invalid longitude: must be within [-180, 180]")
	// (0, 0) is reserved as the "no location" sentinel.
	errZeroCoordinates = errors.New("coordinates (0, 0) cannot be stored; set a real location")

	ErrUnknownPreset = errors.New("unknown location preset")
)

// LocationService owns the stored observer location and its presets.
type LocationService struct {
	locationRepo repository.LocationRepo
	eventRepo    repository.EventRepo
	presets      []Preset
}

func NewLocationService(locationRepo repository.LocationRepo, eventRepo repository.EventRepo, presets []Preset) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		eventRepo:    eventRepo,
		presets:      presets,
	}
}

// Set validates and stores a new observer location, logging LOCATION_SET.
func (s *LocationService) Set(ctx context.Context, p LocationParams) (planetaryhours.ObserverLocation, error) {
	if p.Latitude < -90 || p.Latitude > 90 {
		return planetaryhours.ObserverLocation{}, errInvalidLatitude
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return planetaryhours.ObserverLocation{}, errInvalidLongitude
	}
	if p.Latitude == 0 && p.Longitude == 0 {
		return planetaryhours.ObserverLocation{}, errZeroCoordinates
	}

	now := time.Now().UTC()
	loc := planetaryhours.ObserverLocation{
		ID:        1,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Label:     strings.TrimSpace(p.Label),
		UpdatedAt: now,
	}

	if err := s.locationRepo.Save(ctx, loc); err != nil {
		return planetaryhours.ObserverLocation{}, err
	}

	if err := s.eventRepo.Append(ctx, planetaryhours.ComputationEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        "LOCATION_SET",
		Description: "Observer location set",
		Metadata: map[string]any{
			"latitude":  loc.Latitude,
			"longitude": loc.Longitude,
			"label":     loc.Label,
		},
	}); err != nil {
		return planetaryhours.ObserverLocation{}, err
	}

	return loc, nil
}

// Get returns the stored location; the zero value means none is set.
func (s *LocationService) Get(ctx context.Context) (planetaryhours.ObserverLocation, error) {
	return s.locationRepo.Load(ctx)
}

// Clear removes the stored location and logs LOCATION_CLEARED.
func (s *LocationService) Clear(ctx context.Context) error {
	if err := s.locationRepo.Clear(ctx); err != nil {
		return err
	}
	return s.eventRepo.Append(ctx, planetaryhours.ComputationEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        "LOCATION_CLEARED",
		Description: "Observer location cleared",
	})
}

// Presets returns the configured named locations.
func (s *LocationService) Presets() []Preset {
	return s.presets
}

// ApplyPreset stores the named preset as the observer location.
// Name matching is case-insensitive.
func (s *LocationService) ApplyPreset(ctx context.Context, name string) (planetaryhours.ObserverLocation, error) {
	want := strings.TrimSpace(name)
	for _, p := range s.presets {
		if strings.EqualFold(p.Name, want) {
			return s.Set(ctx, LocationParams{
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
				Label:     p.Name,
			})
		}
	}
	return planetaryhours.ObserverLocation{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
