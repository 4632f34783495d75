package service

import (
	"context"
	"fmt"
	"time"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/logger"
	"controlling_fermentation/internal/models"
	"controlling_fermentation/internal/repository"

	"github.com/google/uuid"
)

// TrackerService replays the plan against the wall clock.
type TrackerService struct {
	planner   Planner
	eventRepo repository.EventRepo
	now       func() time.Time
	log       *logger.Logger

	// ready holds the batches already reported on day.
	ready map[string]struct{}
	day   time.Time
	// seeded is set once today's earlier reports were read back from the log.
	seeded bool
}

// NewTrackerService returns a tracker reading minutes of day from now.
func NewTrackerService(planner Planner, eventRepo repository.EventRepo, now func() time.Time, log *logger.Logger) *TrackerService {
	return &TrackerService{
		planner:   planner,
		eventRepo: eventRepo,
		now:       now,
		log:       log,
		ready:     make(map[string]struct{}),
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *TrackerService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()

	s.step(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.step(ctx)
		}
	}
}

// step evaluates the plan up to the current minute and reports batches that became ready.
func (s *TrackerService) step(ctx context.Context) {
	now := s.now()
	minute := minuteOfDay(now)

	if day := startOfDay(now); !day.Equal(s.day) {
		s.day = day
		s.ready = make(map[string]struct{})
		s.seeded = false
	}
	if !s.seeded {
		s.seeded = s.loadReady(ctx)
	}

	plan, err := s.planner.PlanAt(ctx, minute)
	if err != nil {
		s.log.Errorw("plan_compute_failed", "minute", minute, "error", err)
		return
	}

	for _, r := range plan.Results {
		if r.PercentComplete < 100 {
			continue
		}
		if _, seen := s.ready[r.BatchID]; seen {
			continue
		}

		err := s.eventRepo.Append(ctx, models.PlanEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  now.UTC(),
			Type:        models.EventBatchReady,
			BatchID:     r.BatchID,
			ProductKey:  r.ProductKey,
			Description: fmt.Sprintf("Batch %q is ready", r.Name),
			Metadata: map[string]any{
				"at":          fermentation.FormatClock(minute),
				"accumulated": r.AccumulatedEquivalentMinutes,
			},
		})
		if err != nil {
			// Retried on the next tick.
			s.log.Warnw("batch_ready_append_failed", "batch_id", r.BatchID, "error", err)
			continue
		}
		s.ready[r.BatchID] = struct{}{}
		s.log.Infow("batch_ready", "batch_id", r.BatchID, "name", r.Name, "at", fermentation.FormatClock(minute))
	}
}

// loadReady adds the batches already logged as ready today,
// so a restart does not announce the same batch twice.
func (s *TrackerService) loadReady(ctx context.Context) bool {
	logged, err := s.eventRepo.List(ctx, repository.EventQuery{From: s.day, Type: models.EventBatchReady})
	if err != nil {
		s.log.Warnw("ready_history_load_failed", "day", s.day.Format(time.DateOnly), "error", err)
		return false
	}
	for _, ev := range logged {
		if ev.BatchID != "" {
			s.ready[ev.BatchID] = struct{}{}
		}
	}
	return true
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
