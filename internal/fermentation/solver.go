package fermentation

import (
	"fmt"
	"math"

	"controlling_fermentation/internal/models"
)

const (
	// maxBisectIterations bounds the start-time search; a day needs about 11.
	maxBisectIterations = 25
	minFermentationPct  = 0.1
)

// StartSolution is the outcome of SolveStartTimeForTarget.
type StartSolution struct {
	Start int `json:"start"`
	// Feasible is false when even starting at midnight does not reach the effective ideal.
	Feasible bool `json:"feasible"`
}

// FindFinishTime returns the first sample time f >= start at which the batch
// has accumulated the effective ideal over [start, f).
// The bool is false when the series ends first.
func (p Profile) FindFinishTime(product models.Product, pct float64, start int) (int, bool) {
	ideal := product.EffectiveIdeal()
	law := product.RateLaw()
	factor := FermentationFactor(pct, product.ReferenceFermentationPct, product.FermentationExponentAlpha)

	acc := 0.0
	for _, s := range p.Samples {
		if s.Time < start {
			continue
		}
		if acc >= ideal {
			return s.Time, true
		}
		acc += p.increment(s, law, factor)
	}
	return 0, false
}

// SolveStartTimeForTarget finds the latest start in [0, target] whose accumulation
// over [start, target) still reaches the effective ideal.
// It relies on accumulation being non-increasing in start, which holds for
// non-negative increments.
func (p Profile) SolveStartTimeForTarget(product models.Product, pct float64, target int) StartSolution {
	if target < 0 {
		target = 0
	}
	ideal := product.EffectiveIdeal()

	lo, hi := 0, target
	for i := 0; i < maxBisectIterations && lo <= hi; i++ {
		mid := lo + (hi-lo)/2
		if p.Accumulate(product, pct, mid, target) >= ideal {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	start := min(max(hi, 0), target)
	return StartSolution{
		Start:    start,
		Feasible: p.Accumulate(product, pct, start, target) >= ideal,
	}
}

// SolveFermentPctForTarget returns the fermentation percentage that makes a batch
// started at start reach the effective ideal by target.
// The percentage term factors out of the window sum, so the inversion is closed form.
// An empty window yields the reference percentage together with ErrDegenerateWindow,
// and alpha <= 0 yields it together with ErrPctInsensitive.
func (p Profile) SolveFermentPctForTarget(product models.Product, start, target int) (float64, error) {
	ref := product.ReferenceFermentationPct
	accRef := p.Accumulate(product, ref, start, target)
	if accRef <= 0 {
		return ref, ErrDegenerateWindow
	}
	alpha := product.FermentationExponentAlpha
	if !(alpha > 0) {
		return ref, ErrPctInsensitive
	}

	pct := ref * math.Pow(product.EffectiveIdeal()/accRef, 1/alpha)
	if !finite(pct) {
		return 0, fmt.Errorf("%w: %s fermentation pct for %d..%d", ErrNumericOverflow, product.Key, start, target)
	}
	return roundTo(math.Max(pct, minFermentationPct), 2), nil
}
