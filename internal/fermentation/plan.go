package fermentation

import (
	"errors"
	"fmt"

	"controlling_fermentation/internal/models"
)

// EvaluatePlan validates a snapshot and recomputes every result from scratch.
// Identical snapshots always produce identical plans.
func EvaluatePlan(s models.Snapshot) (models.Plan, error) {
	if err := ValidateSnapshot(s); err != nil {
		return models.Plan{}, err
	}
	schedule := NormalizeSchedule(s.Schedule)

	profile, err := NewProfile(schedule, s.SimulationEnd, s.IntervalMin)
	if err != nil {
		return models.Plan{}, err
	}

	// Solvers need samples up to the latest target, which may lie past the simulation end.
	horizon := s.SimulationEnd
	for _, b := range s.Batches {
		if b.TargetReadyTime != nil && *b.TargetReadyTime > horizon {
			horizon = *b.TargetReadyTime
		}
	}
	solverProfile := profile
	if horizon > s.SimulationEnd {
		if solverProfile, err = NewProfile(schedule, horizon, s.IntervalMin); err != nil {
			return models.Plan{}, err
		}
	}

	plan := models.Plan{
		SimulationEnd: s.SimulationEnd,
		IntervalMin:   s.IntervalMin,
		Samples:       profile.Samples,
		Results:       make([]models.BatchResult, 0, len(s.Batches)),
	}
	for _, b := range s.Batches {
		product, _ := s.Product(b.ProductKey)
		product = b.ProductFor(product)
		res := profile.Evaluate(product, b)
		if !finite(res.AccumulatedEquivalentMinutes) {
			return models.Plan{}, fmt.Errorf("%w: batch %s accumulation", ErrNumericOverflow, b.ID)
		}
		if b.TargetReadyTime != nil {
			suggestTarget(&res, solverProfile, product, b, *b.TargetReadyTime)
		}
		plan.Results = append(plan.Results, res)
	}
	return plan, nil
}

func suggestTarget(res *models.BatchResult, p Profile, product models.Product, b models.Batch, target int) {
	sol := p.SolveStartTimeForTarget(product, b.FermentationPct, target)
	res.SuggestedStartTime = intPtr(sol.Start)
	res.SuggestedStartFeasible = sol.Feasible

	// No suggestion when the percentage cannot move the result or overflows.
	pct, err := p.SolveFermentPctForTarget(product, b.StartTime, target)
	if err != nil && !errors.Is(err, ErrDegenerateWindow) {
		return
	}
	res.SuggestedFermentationPct = &pct
}
