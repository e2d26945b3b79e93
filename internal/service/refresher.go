package service

import (
	"context"
	"errors"
	"time"

	"planetaryhours"
	"planetaryhours/internal/repository"

	"github.com/google/uuid"
)

// failureBackoff spaces out retries after a failed computation so a
// persistent condition (polar night, bad coordinates) doesn't flood the
// event log on every tick.
const failureBackoff = 5 * time.Minute

// RefresherService keeps the persisted planetary-hour snapshot current.
type RefresherService struct {
	hours     *HoursService
	hourRepo  repository.HourRepo
	eventRepo repository.EventRepo

	nextAttempt time.Time // earliest retry after a failure
}

func NewRefresherService(hours *HoursService, hourRepo repository.HourRepo, eventRepo repository.EventRepo) *RefresherService {
	return &RefresherService{
		hours:     hours,
		hourRepo:  hourRepo,
		eventRepo: eventRepo,
	}
}

// Run ticks at the given interval until ctx is canceled. Each tick it
// recomputes only when the stored snapshot is past its recompute-after
// instant, writes the fresh hour back, and logs HOUR_ROLLOVER when the
// ruling hour actually changed.
func (s *RefresherService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.refresh(ctx, now.UTC())
		}
	}
}

func (s *RefresherService) refresh(ctx context.Context, now time.Time) {
	if now.Before(s.nextAttempt) {
		return
	}

	prev, err := s.hourRepo.Load(ctx)
	if err != nil {
		return
	}
	// Snapshot still valid → nothing to do.
	if !prev.ComputedAt.IsZero() && now.Before(prev.RecomputeAfter) {
		return
	}

	fresh, err := s.hours.Current(ctx, 0)
	if err != nil {
		if errors.Is(err, ErrNoLocation) {
			// Nothing to compute until a location is set.
			return
		}
		s.nextAttempt = now.Add(failureBackoff)
		_ = s.eventRepo.Append(ctx, planetaryhours.ComputationEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  now,
			Type:        "COMPUTE_FAILED",
			Description: "Planetary hour computation failed",
			Metadata:    map[string]any{"error": err.Error()},
		})
		return
	}
	s.nextAttempt = time.Time{}

	if err := s.hourRepo.Save(ctx, fresh); err != nil {
		return
	}

	if prev.ComputedAt.IsZero() || !prev.Start.Equal(fresh.Start) || prev.Ruler != fresh.Ruler {
		_ = s.eventRepo.Append(ctx, planetaryhours.ComputationEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  now,
			Type:        "HOUR_ROLLOVER",
			Description: "Planetary hour is now ruled by " + fresh.Ruler,
			Metadata: map[string]any{
				"ruler":           fresh.Ruler,
				"index":           fresh.Index,
				"chaldean_offset": fresh.ChaldeanOffset,
				"is_night":        fresh.Night,
			},
		})
	}
}
