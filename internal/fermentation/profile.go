package fermentation

import (
	"fmt"

	"controlling_fermentation/internal/models"
)

// Profile is the dense, fixed-step temperature series a plan is evaluated against.
// Samples sit at 0, Δ, 2Δ … up to the largest multiple of Δ not exceeding End.
type Profile struct {
	Samples  []models.TemperatureSample
	Interval int
	End      int
}

// NewProfile samples a schedule every interval minutes from midnight through end.
func NewProfile(schedule []models.TemperatureBreakpoint, end, interval int) (Profile, error) {
	if len(schedule) == 0 {
		return Profile{}, fmt.Errorf("%w: schedule has no breakpoints", ErrInvalidProfile)
	}
	if interval <= 0 {
		return Profile{}, fmt.Errorf("%w: interval must be > 0, got %d", ErrInvalidProfile, interval)
	}
	if end < 0 {
		return Profile{}, fmt.Errorf("%w: end must be >= 0, got %d", ErrInvalidProfile, end)
	}

	samples := make([]models.TemperatureSample, 0, end/interval+1)
	for t := 0; t <= end; t += interval {
		samples = append(samples, models.TemperatureSample{Time: t, TempC: TemperatureAt(schedule, t)})
	}
	return Profile{Samples: samples, Interval: interval, End: end}, nil
}

// TemperatureAt holds the most recent breakpoint at or before t.
// Before the first breakpoint's time, the first entry in list order applies.
// Callers are expected to pass a schedule sorted by time (see NormalizeSchedule).
func TemperatureAt(schedule []models.TemperatureBreakpoint, t int) float64 {
	if len(schedule) == 0 {
		return 0
	}
	current := schedule[0]
	for _, bp := range schedule {
		if bp.Time <= t {
			current = bp
		}
	}
	return current.TempC
}
