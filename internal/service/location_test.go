package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func assertWithinTimeWindow(t *testing.T, ts, start, end time.Time) {
	t.Helper()
	if ts.Before(start) || ts.After(end) {
		t.Fatalf("time %v not within window [%v, %v]", ts, start, end)
	}
}

func TestLocationService_Set_StoresAndLogs(t *testing.T) {
	locRepo := &fakeLocationRepo{}
	erepo := &localEventRepo{}
	svc := NewLocationService(locRepo, erepo, nil)

	t0 := time.Now().UTC()
	got, err := svc.Set(context.Background(), LocationParams{Latitude: 40.71, Longitude: -74.0, Label: "  New York  "})
	t1 := time.Now().UTC()
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if len(locRepo.saved) != 1 {
		t.Fatalf("expected 1 Save call, got %d", len(locRepo.saved))
	}
	saved := locRepo.saved[0]
	if saved.ID != 1 || saved.Latitude != 40.71 || saved.Longitude != -74.0 {
		t.Fatalf("unexpected saved location: %+v", saved)
	}
	if saved.Label != "New York" {
		t.Errorf("label should be trimmed, got %q", saved.Label)
	}
	assertWithinTimeWindow(t, saved.UpdatedAt, t0, t1)
	if got != saved {
		t.Errorf("returned location differs from saved: %+v vs %+v", got, saved)
	}

	if len(erepo.events) != 1 || erepo.events[0].Type != "LOCATION_SET" {
		t.Fatalf("expected LOCATION_SET event, got %#v", erepo.events)
	}
	if erepo.events[0].EventID == "" {
		t.Errorf("expected non-empty EventID")
	}
	meta, ok := erepo.events[0].Metadata.(map[string]any)
	if !ok || meta["latitude"] != 40.71 || meta["longitude"] != -74.0 {
		t.Errorf("unexpected event metadata: %#v", erepo.events[0].Metadata)
	}
}

func TestLocationService_Set_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		p    LocationParams
	}{
		{"latitude_too_high", LocationParams{Latitude: 90.1, Longitude: 10}},
		{"latitude_too_low", LocationParams{Latitude: -90.1, Longitude: 10}},
		{"longitude_too_high", LocationParams{Latitude: 10, Longitude: 180.5}},
		{"longitude_too_low", LocationParams{Latitude: 10, Longitude: -181}},
		{"zero_zero_reserved", LocationParams{Latitude: 0, Longitude: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locRepo := &fakeLocationRepo{}
			svc := NewLocationService(locRepo, &localEventRepo{}, nil)

			if _, err := svc.Set(context.Background(), tt.p); err == nil {
				t.Fatalf("expected validation error for %+v", tt.p)
			}
			if len(locRepo.saved) != 0 {
				t.Fatalf("invalid input must not reach the repo")
			}
		})
	}
}

func TestLocationService_Set_EquatorAndMeridianAllowed(t *testing.T) {
	// Only the exact (0, 0) pair is reserved; a zero on one axis is a
	// legitimate coordinate.
	svc := NewLocationService(&fakeLocationRepo{}, &localEventRepo{}, nil)

	if _, err := svc.Set(context.Background(), LocationParams{Latitude: 0, Longitude: 36.8}); err != nil {
		t.Fatalf("equator location rejected: %v", err)
	}
	if _, err := svc.Set(context.Background(), LocationParams{Latitude: 51.48, Longitude: 0}); err != nil {
		t.Fatalf("prime meridian location rejected: %v", err)
	}
}

func TestLocationService_Clear_LogsEvent(t *testing.T) {
	locRepo := &fakeLocationRepo{}
	erepo := &localEventRepo{}
	svc := NewLocationService(locRepo, erepo, nil)

	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if locRepo.clearCalls != 1 {
		t.Fatalf("expected 1 Clear call, got %d", locRepo.clearCalls)
	}
	if len(erepo.events) != 1 || erepo.events[0].Type != "LOCATION_CLEARED" {
		t.Fatalf("expected LOCATION_CLEARED event, got %#v", erepo.events)
	}
}

func TestLocationService_Clear_RepoErrorSkipsEvent(t *testing.T) {
	locRepo := &fakeLocationRepo{clearErr: errors.New("db down")}
	erepo := &localEventRepo{}
	svc := NewLocationService(locRepo, erepo, nil)

	if err := svc.Clear(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(erepo.events) != 0 {
		t.Fatalf("no event should be logged when clear fails")
	}
}

func TestLocationService_ApplyPreset(t *testing.T) {
	presets := []Preset{
		{Name: "London", Latitude: 51.51, Longitude: -0.13},
		{Name: "Tokyo", Latitude: 35.68, Longitude: 139.69},
	}
	locRepo := &fakeLocationRepo{}
	svc := NewLocationService(locRepo, &localEventRepo{}, presets)

	got, err := svc.ApplyPreset(context.Background(), "tokyo")
	if err != nil {
		t.Fatalf("ApplyPreset() error = %v", err)
	}
	if got.Latitude != 35.68 || got.Longitude != 139.69 || got.Label != "Tokyo" {
		t.Fatalf("unexpected location: %+v", got)
	}

	_, err = svc.ApplyPreset(context.Background(), "Atlantis")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestLocationService_Presets_ReturnsConfigured(t *testing.T) {
	presets := []Preset{{Name: "Cairo", Latitude: 30.04, Longitude: 31.24}}
	svc := NewLocationService(&fakeLocationRepo{}, &localEventRepo{}, presets)

	got := svc.Presets()
	if len(got) != 1 || got[0].Name != "Cairo" {
		t.Fatalf("unexpected presets: %+v", got)
	}
}
