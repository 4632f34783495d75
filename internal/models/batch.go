package models

// Batch is one dough in the proofing plan.
type Batch struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	StartTime       int     `json:"start_time"` // minute offset of day
	ProductKey      string  `json:"product_key"`
	FermentationPct float64 `json:"fermentation_pct"`
	TargetReadyTime *int    `json:"target_ready_time,omitempty"`

	// IdealReferenceMinutes overrides the product's ideal for this dough only.
	IdealReferenceMinutes *float64 `json:"ideal_reference_minutes,omitempty"`
}

// ProductFor returns p as this batch sees it, with the batch's own ideal applied.
func (b Batch) ProductFor(p Product) Product {
	if b.IdealReferenceMinutes != nil {
		p.IdealReferenceMinutes = *b.IdealReferenceMinutes
	}
	return p
}

// BatchResult is derived from a Batch on every evaluation; it is never updated in place.
type BatchResult struct {
	BatchID                      string   `json:"batch_id"`
	Name                         string   `json:"name"`
	ProductKey                   string   `json:"product_key"`
	StartTime                    int      `json:"start_time"`
	FermentationPct              float64  `json:"fermentation_pct"`
	AccumulatedEquivalentMinutes float64  `json:"accumulated_equivalent_minutes"` // rounded to 0.1
	PercentComplete              float64  `json:"percent_complete"`
	RemainingMinutes             int      `json:"remaining_minutes"`
	PredictedFinishTime          *int     `json:"predicted_finish_time,omitempty"`
	TargetReadyTime              *int     `json:"target_ready_time,omitempty"`
	ErrorVsTarget                *int     `json:"error_vs_target,omitempty"` // predicted - target; positive is late
	SuggestedStartTime           *int     `json:"suggested_start_time,omitempty"`
	SuggestedStartFeasible       bool     `json:"suggested_start_feasible,omitempty"`
	SuggestedFermentationPct     *float64 `json:"suggested_fermentation_pct,omitempty"`
}

// Plan is the full output of one evaluation: the sample series and a result per batch.
type Plan struct {
	SimulationEnd int                 `json:"simulation_end"`
	IntervalMin   int                 `json:"interval_min"`
	Samples       []TemperatureSample `json:"samples"`
	Results       []BatchResult       `json:"results"`
}
