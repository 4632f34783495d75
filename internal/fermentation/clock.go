package fermentation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
	// MinutesPerDay bounds every minute offset accepted at the boundary.
	MinutesPerDay = minutesPerHour * hoursPerDay
)

// ParseClock converts a 24-hour "HH:MM" string into a minute offset of day.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h >= hoursPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return h*minutesPerHour + m, nil
}

// FormatClock renders a minute offset as "HH:MM", wrapping hours past midnight.
func FormatClock(minutes int) string {
	h := floorMod(floorDiv(minutes, minutesPerHour), hoursPerDay)
	m := floorMod(minutes, minutesPerHour)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ParseDecimal parses a decimal number written with either '.' or ',' as separator.
func ParseDecimal(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if strings.Count(t, ",") > 1 || (strings.Contains(t, ",") && strings.Contains(t, ".")) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	v, err := strconv.ParseFloat(strings.Replace(t, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
