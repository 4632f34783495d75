package fermentation

import (
	"math"

	"controlling_fermentation/internal/models"
)

// ReferenceTempC is the temperature at which every rate law yields exactly 1.
const ReferenceTempC = 24.0

// RateFactor converts a temperature into equivalent minutes per real minute.
func RateFactor(law models.RateLaw, tempC float64) float64 {
	delta := tempC - ReferenceTempC
	switch law.Kind {
	case models.RateLawQ10:
		return math.Pow(law.Q10, delta/10)
	default:
		k := law.K
		if k == 0 {
			k = models.DefaultRateSensitivity
		}
		return math.Exp(k * delta)
	}
}
