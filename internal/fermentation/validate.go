package fermentation

import (
	"fmt"
	"math"
	"sort"

	"controlling_fermentation/internal/models"
)

// MaxBatches is how many doughs one plan holds.
const MaxBatches = 20

// NormalizeSchedule returns a copy of the schedule stable-sorted by time.
// Breakpoints sharing a time keep their list order, so the later one wins the lookup.
func NormalizeSchedule(schedule []models.TemperatureBreakpoint) []models.TemperatureBreakpoint {
	out := append([]models.TemperatureBreakpoint(nil), schedule...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// ValidateSchedule rejects empty schedules and out-of-range breakpoints.
func ValidateSchedule(schedule []models.TemperatureBreakpoint) error {
	if len(schedule) == 0 {
		return fmt.Errorf("%w: schedule has no breakpoints", ErrInvalidProfile)
	}
	for i, bp := range schedule {
		if !validMinute(bp.Time) {
			return fmt.Errorf("%w: breakpoint %d time %d outside 0..%d", ErrInvalidProfile, i, bp.Time, MinutesPerDay-1)
		}
		if !finite(bp.TempC) {
			return fmt.Errorf("%w: breakpoint %d temperature", ErrInvalidNumber, i)
		}
	}
	return nil
}

// ValidateSimulation checks the simulation end and sampling interval.
func ValidateSimulation(end, interval int) error {
	if !validMinute(end) {
		return fmt.Errorf("%w: simulation end %d outside 0..%d", ErrInvalidProfile, end, MinutesPerDay-1)
	}
	if interval <= 0 || interval > MinutesPerDay {
		return fmt.Errorf("%w: interval %d outside 1..%d", ErrInvalidProfile, interval, MinutesPerDay)
	}
	return nil
}

// ValidateProduct checks the numeric preconditions the engine relies on.
func ValidateProduct(p models.Product) error {
	switch {
	case p.Key == "":
		return fmt.Errorf("%w: key is required", ErrInvalidProduct)
	case !(p.IdealReferenceMinutes > 0) || !finite(p.IdealReferenceMinutes):
		return fmt.Errorf("%w: %s ideal_reference_minutes must be > 0", ErrInvalidProduct, p.Key)
	case !(p.ReferenceFermentationPct > 0) || !finite(p.ReferenceFermentationPct):
		return fmt.Errorf("%w: %s reference_fermentation_pct must be > 0", ErrInvalidProduct, p.Key)
	case !(p.CorrectionFactor > 0) || !finite(p.CorrectionFactor):
		return fmt.Errorf("%w: %s correction_factor must be > 0", ErrInvalidProduct, p.Key)
	case p.Q10Factor < 0 || !finite(p.Q10Factor):
		return fmt.Errorf("%w: %s q10_factor must be >= 0", ErrInvalidProduct, p.Key)
	case !finite(p.RateSensitivityK) || !finite(p.FermentationExponentAlpha):
		return fmt.Errorf("%w: %s rate parameters", ErrInvalidNumber, p.Key)
	}
	return nil
}

// ValidateBatch checks a batch against the product catalog it refers to.
func ValidateBatch(b models.Batch, catalog func(key string) (models.Product, bool)) error {
	if b.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidBatch)
	}
	if !validMinute(b.StartTime) {
		return fmt.Errorf("%w: %s start %d outside 0..%d", ErrInvalidBatch, b.ID, b.StartTime, MinutesPerDay-1)
	}
	if !(b.FermentationPct > 0) || !finite(b.FermentationPct) {
		return fmt.Errorf("%w: %s fermentation_pct must be > 0", ErrInvalidBatch, b.ID)
	}
	if b.TargetReadyTime != nil && !validMinute(*b.TargetReadyTime) {
		return fmt.Errorf("%w: %s target %d outside 0..%d", ErrInvalidBatch, b.ID, *b.TargetReadyTime, MinutesPerDay-1)
	}
	if v := b.IdealReferenceMinutes; v != nil && (!(*v > 0) || !finite(*v)) {
		return fmt.Errorf("%w: %s ideal_reference_minutes must be > 0", ErrInvalidBatch, b.ID)
	}
	if _, ok := catalog(b.ProductKey); !ok {
		return fmt.Errorf("%w: %q (batch %s)", ErrUnknownProduct, b.ProductKey, b.ID)
	}
	return nil
}

// ValidateSnapshot checks a whole snapshot before it reaches the engine.
func ValidateSnapshot(s models.Snapshot) error {
	if err := ValidateSchedule(s.Schedule); err != nil {
		return err
	}
	if err := ValidateSimulation(s.SimulationEnd, s.IntervalMin); err != nil {
		return err
	}
	keys := make(map[string]struct{}, len(s.Products))
	for _, p := range s.Products {
		if err := ValidateProduct(p); err != nil {
			return err
		}
		if _, dup := keys[p.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidProduct, p.Key)
		}
		keys[p.Key] = struct{}{}
	}
	if len(s.Batches) > MaxBatches {
		return fmt.Errorf("%w: %d batches, at most %d", ErrInvalidBatch, len(s.Batches), MaxBatches)
	}
	ids := make(map[string]struct{}, len(s.Batches))
	for _, b := range s.Batches {
		if err := ValidateBatch(b, s.Product); err != nil {
			return err
		}
		if _, dup := ids[b.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidBatch, b.ID)
		}
		ids[b.ID] = struct{}{}
	}
	return nil
}

func validMinute(m int) bool { return m >= 0 && m < MinutesPerDay }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
