package service

import (
	"context"
	"fmt"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/models"
)

type PlannerService struct {
	store *snapshotStore
}

func NewPlannerService(store *snapshotStore) *PlannerService {
	return &PlannerService{store: store}
}

// Snapshot returns the current inputs of the plan.
func (s *PlannerService) Snapshot(ctx context.Context) (models.Snapshot, error) {
	return s.store.load(ctx)
}

// Plan recomputes the whole plan from the stored snapshot.
func (s *PlannerService) Plan(ctx context.Context) (models.Plan, error) {
	snap, err := s.store.load(ctx)
	if err != nil {
		return models.Plan{}, err
	}
	return evaluate(snap)
}

// PlanAt recomputes the plan as if the simulation ended at the given minute.
func (s *PlannerService) PlanAt(ctx context.Context, end int) (models.Plan, error) {
	snap, err := s.store.load(ctx)
	if err != nil {
		return models.Plan{}, err
	}
	return evaluate(snap.WithSimulation(end, snap.IntervalMin))
}

func evaluate(snap models.Snapshot) (models.Plan, error) {
	plan, err := fermentation.EvaluatePlan(snap)
	if err != nil {
		return models.Plan{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return plan, nil
}
