package fermentation

import (
	"math"

	"controlling_fermentation/internal/models"
)

// FermentationFactor scales progress by the fermentation percentage relative to the reference.
func FermentationFactor(pct, referencePct, alpha float64) float64 {
	return math.Pow(pct/referencePct, math.Max(alpha, 0))
}

// increment is the equivalent minutes a single sample contributes.
func (p Profile) increment(s models.TemperatureSample, law models.RateLaw, factor float64) float64 {
	return float64(p.Interval) * RateFactor(law, s.TempC) * factor
}

// Accumulate sums equivalent minutes over samples with from <= time < to.
func (p Profile) Accumulate(product models.Product, pct float64, from, to int) float64 {
	law := product.RateLaw()
	factor := FermentationFactor(pct, product.ReferenceFermentationPct, product.FermentationExponentAlpha)

	acc := 0.0
	for _, s := range p.Samples {
		if s.Time < from {
			continue
		}
		if s.Time >= to {
			break
		}
		acc += p.increment(s, law, factor)
	}
	return acc
}

// Evaluate derives the result of a batch over [batch.StartTime, p.End).
// Percent and remaining time use the unrounded accumulation; only the stored
// accumulated value is rounded for display, and only afterwards.
func (p Profile) Evaluate(product models.Product, batch models.Batch) models.BatchResult {
	ideal := product.EffectiveIdeal()
	acc := p.Accumulate(product, batch.FermentationPct, batch.StartTime, p.End)

	res := models.BatchResult{
		BatchID:         batch.ID,
		Name:            batch.Name,
		ProductKey:      batch.ProductKey,
		StartTime:       batch.StartTime,
		FermentationPct: batch.FermentationPct,
	}
	res.PercentComplete = math.Min(100, 100*acc/ideal)
	res.RemainingMinutes = int(math.Max(0, math.Round(ideal-acc)))
	res.AccumulatedEquivalentMinutes = roundTo(acc, 1)

	if finish, ok := p.FindFinishTime(product, batch.FermentationPct, batch.StartTime); ok {
		res.PredictedFinishTime = intPtr(finish)
	}
	if batch.TargetReadyTime != nil {
		res.TargetReadyTime = intPtr(*batch.TargetReadyTime)
		if res.PredictedFinishTime != nil {
			res.ErrorVsTarget = intPtr(*res.PredictedFinishTime - *batch.TargetReadyTime)
		}
	}
	return res
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func intPtr(v int) *int { return &v }
