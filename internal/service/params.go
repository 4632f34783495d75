package service

import "time"

// SimulationParams replaces the simulation end and sampling interval.
type SimulationParams struct {
	End         int // minute of day
	IntervalMin int
}

// BatchParams carries the editable fields of a batch.
type BatchParams struct {
	Name            string
	StartTime       int
	ProductKey      string
	FermentationPct float64
	TargetReadyTime *int

	// IdealReferenceMinutes overrides the product's ideal when set.
	IdealReferenceMinutes *float64
}

// SolveStartParams asks for the latest start that still makes Target.
type SolveStartParams struct {
	ProductKey      string
	FermentationPct float64
	Target          int
}

// SolveFermentParams asks for the fermentation percentage that turns [Start, Target) into a ready dough.
type SolveFermentParams struct {
	ProductKey string
	Start      int
	Target     int
}

// StartEstimate is the answer to SolveStartParams.
type StartEstimate struct {
	Start    int  `json:"start"`
	Feasible bool `json:"feasible"`
	// PredictedFinish is where a batch started at Start actually finishes, if it does by Target.
	PredictedFinish *int `json:"predicted_finish,omitempty"`
}

// FermentEstimate is the answer to SolveFermentParams.
type FermentEstimate struct {
	FermentationPct float64 `json:"fermentation_pct"`
	// Degenerate is set when the window was empty and the reference percentage came back unchanged.
	Degenerate bool `json:"degenerate"`
	// Insensitive is set when the product's alpha is 0, so any percentage gives the same progress.
	Insensitive bool `json:"insensitive"`
}

// FinishEstimate looks for a batch's finish over the rest of the day.
type FinishEstimate struct {
	BatchID    string `json:"batch_id"`
	FinishTime *int   `json:"finish_time,omitempty"`
	Horizon    int    `json:"horizon"`
}

// LogFilter narrows the plan log. Zero fields do not filter.
type LogFilter struct {
	From       time.Time // inclusive
	To         time.Time // inclusive
	Type       string    // any of models.EventTypes, case and dash insensitive
	BatchID    string
	ProductKey string
}
