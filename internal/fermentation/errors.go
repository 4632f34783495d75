package fermentation

import "errors"

// Sentinel errors for the fermentation engine.
// Use errors.Is to check: errors.Is(err, fermentation.ErrInvalidTimeFormat)
var (
	ErrInvalidTimeFormat = errors.New("fermentation: invalid time format, expected HH:MM")
	ErrInvalidNumber     = errors.New("fermentation: invalid number")
	ErrInvalidProfile    = errors.New("fermentation: invalid temperature profile")
	ErrInvalidProduct    = errors.New("fermentation: invalid product")
	ErrInvalidBatch      = errors.New("fermentation: invalid batch")
	ErrUnknownProduct    = errors.New("fermentation: unknown product")

	// ErrDegenerateWindow accompanies a usable value: the solver fell back to the reference percentage.
	ErrDegenerateWindow = errors.New("fermentation: empty accumulation window")
	// ErrPctInsensitive accompanies the reference percentage when alpha is 0 and the percentage has no effect.
	ErrPctInsensitive = errors.New("fermentation: progress does not depend on fermentation percentage")
	// ErrNumericOverflow is returned when a result leaves the float64 range.
	ErrNumericOverflow = errors.New("fermentation: result is not a finite number")
	// ErrHorizonExceeded is not a failure; the batch simply does not finish inside the simulated horizon.
	ErrHorizonExceeded = errors.New("fermentation: no finish within horizon")
)
