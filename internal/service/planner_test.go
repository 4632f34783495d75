package service

import (
	"context"
	"errors"
	"testing"

	"controlling_fermentation/internal/models"
)

func TestPlannerService_Plan(t *testing.T) {
	store, _, _ := newTestStore(flatSnapshot())
	svc := NewPlannerService(store)

	plan, err := svc.Plan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.SimulationEnd != 120 || len(plan.Samples) != 13 {
		t.Fatalf("unexpected plan window: end=%d samples=%d", plan.SimulationEnd, len(plan.Samples))
	}
	if len(plan.Results) != 1 {
		t.Fatalf("expected one result, got %d", len(plan.Results))
	}
	// 12 samples in [0, 120) at 10 minutes each.
	if got := plan.Results[0].AccumulatedEquivalentMinutes; got != 120 {
		t.Fatalf("accumulated = %v, want 120", got)
	}
}

func TestPlannerService_PlanAtReplacesEnd(t *testing.T) {
	store, snaps, _ := newTestStore(flatSnapshot())
	svc := NewPlannerService(store)

	plan, err := svc.PlanAt(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.SimulationEnd != 30 || plan.Results[0].AccumulatedEquivalentMinutes != 30 {
		t.Fatalf("unexpected plan: end=%d acc=%v", plan.SimulationEnd, plan.Results[0].AccumulatedEquivalentMinutes)
	}
	if snaps.saves != 0 || snaps.snap.SimulationEnd != 120 {
		t.Fatalf("PlanAt must not change the stored snapshot")
	}
}

func TestPlannerService_InvalidStoredSnapshot(t *testing.T) {
	bad := flatSnapshot()
	bad.Batches = append(bad.Batches, models.Batch{ID: "b2", ProductKey: "missing", FermentationPct: 2})
	store, _, _ := newTestStore(bad)

	if _, err := NewPlannerService(store).Plan(context.Background()); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestPlannerService_SnapshotDefaults(t *testing.T) {
	store, _, _ := newTestStore(models.Snapshot{})

	snap, err := NewPlannerService(store).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.SimulationEnd != defaultSimulationEnd || snap.IntervalMin != defaultIntervalMin {
		t.Fatalf("unexpected defaults: %+v", snap)
	}
}
