package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/models"
)

// clockTime is a minute of day that travels as "HH:MM".
type clockTime int

func (m clockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(fermentation.FormatClock(int(m)))
}

func (m *clockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: expected \"HH:MM\" string", fermentation.ErrInvalidTimeFormat)
	}
	v, err := fermentation.ParseClock(s)
	if err != nil {
		return err
	}
	*m = clockTime(v)
	return nil
}

func clockPtr(m *int) *clockTime {
	if m == nil {
		return nil
	}
	c := clockTime(*m)
	return &c
}

func (m *clockTime) minutesPtr() *int {
	if m == nil {
		return nil
	}
	v := int(*m)
	return &v
}

// decimal accepts a JSON number or a string using "." or "," as the decimal separator.
type decimal float64

func (d *decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := fermentation.ParseDecimal(s)
		if err != nil {
			return err
		}
		*d = decimal(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%w: %s", fermentation.ErrInvalidNumber, string(b))
	}
	*d = decimal(v)
	return nil
}

func (d *decimal) value() float64 {
	if d == nil {
		return 0
	}
	return float64(*d)
}

// ptr keeps "not given" apart from zero.
func (d *decimal) ptr() *float64 {
	if d == nil {
		return nil
	}
	v := float64(*d)
	return &v
}

// ---- schedule ----

type breakpointDTO struct {
	Time  clockTime `json:"time"`
	TempC decimal   `json:"temp_c"`
}

type scheduleRequest struct {
	Breakpoints []breakpointDTO `json:"breakpoints" binding:"required"`
}

type scheduleResponse struct {
	Breakpoints []breakpointDTO `json:"breakpoints"`
}

func toScheduleResponse(schedule []models.TemperatureBreakpoint) scheduleResponse {
	out := scheduleResponse{Breakpoints: make([]breakpointDTO, 0, len(schedule))}
	for _, bp := range schedule {
		out.Breakpoints = append(out.Breakpoints, breakpointDTO{Time: clockTime(bp.Time), TempC: decimal(bp.TempC)})
	}
	return out
}

func (r scheduleRequest) toModel() []models.TemperatureBreakpoint {
	out := make([]models.TemperatureBreakpoint, 0, len(r.Breakpoints))
	for _, bp := range r.Breakpoints {
		out = append(out, models.TemperatureBreakpoint{Time: int(bp.Time), TempC: float64(bp.TempC)})
	}
	return out
}

type simulationRequest struct {
	End         *clockTime `json:"end" binding:"required"`
	IntervalMin int        `json:"interval_min" binding:"required,min=1,max=1440"`
}

// ---- plan ----

type sampleDTO struct {
	Time  clockTime `json:"time"`
	TempC float64   `json:"temp_c"`
}

type batchResultDTO struct {
	BatchID                      string     `json:"batch_id"`
	Name                         string     `json:"name"`
	ProductKey                   string     `json:"product_key"`
	StartTime                    clockTime  `json:"start_time"`
	FermentationPct              float64    `json:"fermentation_pct"`
	AccumulatedEquivalentMinutes float64    `json:"accumulated_equivalent_minutes"`
	PercentComplete              float64    `json:"percent_complete"`
	RemainingMinutes             int        `json:"remaining_minutes"`
	PredictedFinishTime          *clockTime `json:"predicted_finish_time"`
	TargetReadyTime              *clockTime `json:"target_ready_time,omitempty"`
	ErrorVsTarget                *int       `json:"error_vs_target,omitempty"`
	SuggestedStartTime           *clockTime `json:"suggested_start_time,omitempty"`
	SuggestedStartFeasible       *bool      `json:"suggested_start_feasible,omitempty"`
	SuggestedFermentationPct     *float64   `json:"suggested_fermentation_pct,omitempty"`
}

type planResponse struct {
	SimulationEnd clockTime        `json:"simulation_end"`
	IntervalMin   int              `json:"interval_min"`
	Samples       []sampleDTO      `json:"samples"`
	Results       []batchResultDTO `json:"results"`
}

func toSamples(samples []models.TemperatureSample) []sampleDTO {
	out := make([]sampleDTO, 0, len(samples))
	for _, s := range samples {
		out = append(out, sampleDTO{Time: clockTime(s.Time), TempC: s.TempC})
	}
	return out
}

func toPlanResponse(p models.Plan) planResponse {
	out := planResponse{
		SimulationEnd: clockTime(p.SimulationEnd),
		IntervalMin:   p.IntervalMin,
		Samples:       toSamples(p.Samples),
		Results:       make([]batchResultDTO, 0, len(p.Results)),
	}
	for _, r := range p.Results {
		dto := batchResultDTO{
			BatchID:                      r.BatchID,
			Name:                         r.Name,
			ProductKey:                   r.ProductKey,
			StartTime:                    clockTime(r.StartTime),
			FermentationPct:              r.FermentationPct,
			AccumulatedEquivalentMinutes: r.AccumulatedEquivalentMinutes,
			PercentComplete:              r.PercentComplete,
			RemainingMinutes:             r.RemainingMinutes,
			PredictedFinishTime:          clockPtr(r.PredictedFinishTime),
			TargetReadyTime:              clockPtr(r.TargetReadyTime),
			ErrorVsTarget:                r.ErrorVsTarget,
			SuggestedStartTime:           clockPtr(r.SuggestedStartTime),
			SuggestedFermentationPct:     r.SuggestedFermentationPct,
		}
		if r.SuggestedStartTime != nil {
			feasible := r.SuggestedStartFeasible
			dto.SuggestedStartFeasible = &feasible
		}
		out.Results = append(out.Results, dto)
	}
	return out
}

// ---- products ----

type productRequest struct {
	Name                      string   `json:"name"`
	IdealReferenceMinutes     *decimal `json:"ideal_reference_minutes" binding:"required"`
	ReferenceFermentationPct  *decimal `json:"reference_fermentation_pct" binding:"required"`
	RateSensitivityK          *decimal `json:"rate_sensitivity_k"`
	Q10Factor                 *decimal `json:"q10_factor"`
	FermentationExponentAlpha *decimal `json:"fermentation_exponent_alpha"`
	CorrectionFactor          *decimal `json:"correction_factor"`
}

func (r productRequest) toModel(key string) models.Product {
	p := models.Product{
		Key:                       key,
		Name:                      r.Name,
		IdealReferenceMinutes:     r.IdealReferenceMinutes.value(),
		ReferenceFermentationPct:  r.ReferenceFermentationPct.value(),
		RateSensitivityK:          r.RateSensitivityK.value(),
		Q10Factor:                 r.Q10Factor.value(),
		FermentationExponentAlpha: 1,
		CorrectionFactor:          1,
	}
	if r.FermentationExponentAlpha != nil {
		p.FermentationExponentAlpha = r.FermentationExponentAlpha.value()
	}
	if r.CorrectionFactor != nil {
		p.CorrectionFactor = r.CorrectionFactor.value()
	}
	return p
}

// ---- batches ----

type batchRequest struct {
	Name            string     `json:"name"`
	StartTime       *clockTime `json:"start_time" binding:"required"`
	ProductKey      string     `json:"product_key" binding:"required"`
	FermentationPct *decimal   `json:"fermentation_pct" binding:"required"`
	TargetReadyTime *clockTime `json:"target_ready_time"`

	// IdealReferenceMinutes replaces the product's ideal for this batch when given.
	IdealReferenceMinutes *decimal `json:"ideal_reference_minutes"`
}

type batchDTO struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	StartTime             clockTime  `json:"start_time"`
	ProductKey            string     `json:"product_key"`
	FermentationPct       float64    `json:"fermentation_pct"`
	TargetReadyTime       *clockTime `json:"target_ready_time,omitempty"`
	IdealReferenceMinutes *float64   `json:"ideal_reference_minutes,omitempty"`
}

func toBatchDTO(b models.Batch) batchDTO {
	return batchDTO{
		ID:                    b.ID,
		Name:                  b.Name,
		StartTime:             clockTime(b.StartTime),
		ProductKey:            b.ProductKey,
		FermentationPct:       b.FermentationPct,
		TargetReadyTime:       clockPtr(b.TargetReadyTime),
		IdealReferenceMinutes: b.IdealReferenceMinutes,
	}
}

type finishResponse struct {
	BatchID    string     `json:"batch_id"`
	FinishTime *clockTime `json:"finish_time"`
	// HorizonExceeded is set when the batch does not finish before Horizon.
	HorizonExceeded bool      `json:"horizon_exceeded"`
	Horizon         clockTime `json:"horizon"`
}

// ---- solvers ----

type solveStartRequest struct {
	ProductKey      string     `json:"product_key" binding:"required"`
	FermentationPct *decimal   `json:"fermentation_pct" binding:"required"`
	Target          *clockTime `json:"target" binding:"required"`
}

type solveStartResponse struct {
	Start           clockTime  `json:"start"`
	Feasible        bool       `json:"feasible"`
	PredictedFinish *clockTime `json:"predicted_finish,omitempty"`
}

type solveFermentRequest struct {
	ProductKey string     `json:"product_key" binding:"required"`
	Start      *clockTime `json:"start" binding:"required"`
	Target     *clockTime `json:"target" binding:"required"`
}
