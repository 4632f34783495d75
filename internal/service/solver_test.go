package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"controlling_fermentation/internal/logger"
	"controlling_fermentation/internal/models"
)

func TestSolverService_SolveStart(t *testing.T) {
	store, _, events := newTestStore(flatSnapshot())
	svc := NewSolverService(store, logger.Nop())

	// Five samples are needed for 45 minutes, so the latest start for 120 is 70.
	got, err := svc.SolveStart(context.Background(), SolveStartParams{ProductKey: "forma", FermentationPct: 2, Target: 120})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Start != 70 || !got.Feasible {
		t.Fatalf("got %+v, want start 70 feasible", got)
	}
	if got.PredictedFinish == nil || *got.PredictedFinish != 120 {
		t.Fatalf("predicted finish = %v, want 120", got.PredictedFinish)
	}
	if len(events.appends) != 1 || events.appends[0].Type != models.EventSolve {
		t.Fatalf("expected one SOLVE event, got %+v", events.appends)
	}
}

func TestSolverService_SolveStartInfeasible(t *testing.T) {
	store, _, _ := newTestStore(flatSnapshot())

	got, err := NewSolverService(store, logger.Nop()).SolveStart(context.Background(),
		SolveStartParams{ProductKey: "forma", FermentationPct: 2, Target: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Feasible || got.Start != 0 || got.PredictedFinish != nil {
		t.Fatalf("expected infeasible start at 0, got %+v", got)
	}
}

func TestSolverService_SolveStartErrors(t *testing.T) {
	store, _, _ := newTestStore(flatSnapshot())
	svc := NewSolverService(store, logger.Nop())
	ctx := context.Background()

	if _, err := svc.SolveStart(ctx, SolveStartParams{ProductKey: "nope", FermentationPct: 2, Target: 60}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.SolveStart(ctx, SolveStartParams{ProductKey: "forma", FermentationPct: 0, Target: 60}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for pct, got %v", err)
	}
	if _, err := svc.SolveStart(ctx, SolveStartParams{ProductKey: "forma", FermentationPct: 2, Target: 2000}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for target, got %v", err)
	}
}

func TestSolverService_SolveFermentation(t *testing.T) {
	store, _, _ := newTestStore(flatSnapshot())
	svc := NewSolverService(store, logger.Nop())

	// [0, 60) gives 60 minutes at 2 %, so 45 minutes need 1.5 %.
	got, err := svc.SolveFermentation(context.Background(), SolveFermentParams{ProductKey: "forma", Start: 0, Target: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FermentationPct != 1.5 || got.Degenerate {
		t.Fatalf("got %+v, want 1.5", got)
	}
}

func TestSolverService_SolveFermentationDegenerate(t *testing.T) {
	store, _, _ := newTestStore(flatSnapshot())

	got, err := NewSolverService(store, logger.Nop()).SolveFermentation(context.Background(),
		SolveFermentParams{ProductKey: "forma", Start: 60, Target: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Degenerate || got.FermentationPct != 2 {
		t.Fatalf("expected reference pct flagged degenerate, got %+v", got)
	}
}

func TestSolverService_EventFailureDoesNotFailAnswer(t *testing.T) {
	store, _, events := newTestStore(flatSnapshot())
	events.appendErr = errors.New("db locked")

	got, err := NewSolverService(store, logger.Nop()).SolveFermentation(context.Background(),
		SolveFermentParams{ProductKey: "forma", Start: 0, Target: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FermentationPct != 1.5 {
		t.Fatalf("got %+v", got)
	}
}

func TestSolverService_SolveFermentationAlphaZero(t *testing.T) {
	snap := flatSnapshot()
	snap.Products[0].FermentationExponentAlpha = 0
	store, _, events := newTestStore(snap)

	// Half an hour holds 30 equivalent minutes; without alpha no percentage can make up the rest.
	got, err := NewSolverService(store, logger.Nop()).SolveFermentation(context.Background(),
		SolveFermentParams{ProductKey: "forma", Start: 0, Target: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Insensitive || got.Degenerate || got.FermentationPct != 2 {
		t.Fatalf("expected reference pct flagged insensitive, got %+v", got)
	}
	if len(events.appends) != 1 {
		t.Fatalf("expected one SOLVE event, got %d", len(events.appends))
	}
	if _, err := json.Marshal(events.appends[0].Metadata); err != nil {
		t.Fatalf("metadata not encodable: %v", err)
	}
}
