package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/logger"
	"controlling_fermentation/internal/models"
)

type SolverService struct {
	store *snapshotStore
	log   *logger.Logger
}

func NewSolverService(store *snapshotStore, log *logger.Logger) *SolverService {
	return &SolverService{store: store, log: log}
}

// SolveStart finds the latest start that makes p.Target for an ad-hoc batch.
func (s *SolverService) SolveStart(ctx context.Context, p SolveStartParams) (StartEstimate, error) {
	if p.FermentationPct <= 0 {
		return StartEstimate{}, fmt.Errorf("%w: fermentation_pct must be > 0", ErrValidation)
	}
	product, profile, err := s.prepare(ctx, p.ProductKey, p.Target)
	if err != nil {
		return StartEstimate{}, err
	}

	sol := profile.SolveStartTimeForTarget(product, p.FermentationPct, p.Target)
	out := StartEstimate{Start: sol.Start, Feasible: sol.Feasible}
	if f, ok := profile.FindFinishTime(product, p.FermentationPct, sol.Start); ok && f <= p.Target {
		out.PredictedFinish = &f
	}

	s.record(ctx, p.ProductKey, fmt.Sprintf("Start for %q ready at %s: %s", p.ProductKey,
		fermentation.FormatClock(p.Target), fermentation.FormatClock(out.Start)),
		map[string]any{
			"solver":   "start",
			"target":   p.Target,
			"start":    out.Start,
			"feasible": out.Feasible,
		})
	return out, nil
}

// SolveFermentation finds the percentage that makes [p.Start, p.Target) exactly enough.
func (s *SolverService) SolveFermentation(ctx context.Context, p SolveFermentParams) (FermentEstimate, error) {
	if !(p.Start >= 0 && p.Start < fermentation.MinutesPerDay) {
		return FermentEstimate{}, fmt.Errorf("%w: start %d outside the day", ErrValidation, p.Start)
	}
	product, profile, err := s.prepare(ctx, p.ProductKey, p.Target)
	if err != nil {
		return FermentEstimate{}, err
	}

	pct, err := profile.SolveFermentPctForTarget(product, p.Start, p.Target)
	out := FermentEstimate{FermentationPct: pct}
	switch {
	case errors.Is(err, fermentation.ErrDegenerateWindow):
		out.Degenerate = true
	case errors.Is(err, fermentation.ErrPctInsensitive):
		out.Insensitive = true
	case err != nil:
		return FermentEstimate{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.record(ctx, p.ProductKey, fmt.Sprintf("Fermentation for %q from %s to %s: %.2f%%", p.ProductKey,
		fermentation.FormatClock(p.Start), fermentation.FormatClock(p.Target), out.FermentationPct),
		map[string]any{
			"solver":      "fermentation",
			"start":       p.Start,
			"target":      p.Target,
			"pct":         out.FermentationPct,
			"degenerate":  out.Degenerate,
			"insensitive": out.Insensitive,
		})
	return out, nil
}

// prepare resolves the product and builds a profile that reaches the target.
func (s *SolverService) prepare(ctx context.Context, key string, target int) (models.Product, fermentation.Profile, error) {
	if !(target >= 0 && target < fermentation.MinutesPerDay) {
		return models.Product{}, fermentation.Profile{}, fmt.Errorf("%w: target %d outside the day", ErrValidation, target)
	}
	snap, err := s.store.load(ctx)
	if err != nil {
		return models.Product{}, fermentation.Profile{}, err
	}
	product, ok := snap.Product(key)
	if !ok {
		return models.Product{}, fermentation.Profile{}, fmt.Errorf("%w: product %q", ErrNotFound, key)
	}
	profile, err := fermentation.NewProfile(fermentation.NormalizeSchedule(snap.Schedule), target, snap.IntervalMin)
	if err != nil {
		return models.Product{}, fermentation.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return product, profile, nil
}

// record logs a solver run. A failed append never fails the answer.
func (s *SolverService) record(ctx context.Context, productKey, desc string, meta map[string]any) {
	err := s.store.events.Append(ctx, models.PlanEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventSolve,
		ProductKey:  productKey,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil {
		s.log.Warnw("solve_event_append_failed", "error", err)
	}
}
