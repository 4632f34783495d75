package service

import (
	"context"
	"fmt"
	"time"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/models"
)

type ScheduleService struct {
	store *snapshotStore
}

func NewScheduleService(store *snapshotStore) *ScheduleService {
	return &ScheduleService{store: store}
}

func (s *ScheduleService) GetSchedule(ctx context.Context) ([]models.TemperatureBreakpoint, error) {
	snap, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Schedule, nil
}

// SetSchedule stores the breakpoints sorted by time and returns them in that order.
// Breakpoints sharing a time keep their submitted order.
func (s *ScheduleService) SetSchedule(ctx context.Context, schedule []models.TemperatureBreakpoint) ([]models.TemperatureBreakpoint, error) {
	if err := fermentation.ValidateSchedule(schedule); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	snap, unlock, err := s.store.loadForUpdate(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	normalized := fermentation.NormalizeSchedule(schedule)
	err = s.store.commit(ctx, snap.WithSchedule(normalized), models.PlanEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventScheduleChange,
		Description: fmt.Sprintf("Temperature schedule replaced (%d breakpoints)", len(normalized)),
		Metadata:    map[string]any{"breakpoints": len(normalized)},
	})
	if err != nil {
		return nil, err
	}
	return normalized, nil
}

// SetSimulation changes the simulation end and the sampling interval.
func (s *ScheduleService) SetSimulation(ctx context.Context, p SimulationParams) error {
	if err := fermentation.ValidateSimulation(p.End, p.IntervalMin); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	snap, unlock, err := s.store.loadForUpdate(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	return s.store.commit(ctx, snap.WithSimulation(p.End, p.IntervalMin), models.PlanEvent{
		OccurredAt: time.Now().UTC(),
		Type:       models.EventSimulationChange,
		Description: fmt.Sprintf("Simulation set to end at %s every %d min",
			fermentation.FormatClock(p.End), p.IntervalMin),
		Metadata: map[string]any{
			"from_end":      snap.SimulationEnd,
			"to_end":        p.End,
			"from_interval": snap.IntervalMin,
			"to_interval":   p.IntervalMin,
		},
	})
}
