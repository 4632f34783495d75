package models

// RateLawKind selects how temperature maps to a kinetic rate multiplier.
type RateLawKind string

const (
	RateLawExponential RateLawKind = "EXPONENTIAL"
	RateLawQ10         RateLawKind = "Q10"
)

// DefaultRateSensitivity is the exponential-mode k used when a product leaves it unset.
const DefaultRateSensitivity = 0.045

// RateLaw is the resolved rate law of a product. Only the parameter of the active kind is meaningful.
type RateLaw struct {
	Kind RateLawKind `json:"kind"`
	K    float64     `json:"k,omitempty"`
	Q10  float64     `json:"q10,omitempty"`
}

// Product is catalog reference data for one kind of dough.
type Product struct {
	Key                       string  `json:"key"`
	Name                      string  `json:"name"`
	IdealReferenceMinutes     float64 `json:"ideal_reference_minutes"`
	ReferenceFermentationPct  float64 `json:"reference_fermentation_pct"`
	RateSensitivityK          float64 `json:"rate_sensitivity_k"`          // used when Q10Factor is 0
	Q10Factor                 float64 `json:"q10_factor"`                  // 0 disables Q10 mode
	FermentationExponentAlpha float64 `json:"fermentation_exponent_alpha"` // negative values act as 0
	CorrectionFactor          float64 `json:"correction_factor"`
}

// RateLaw resolves the product's rate parameters into a single active law.
func (p Product) RateLaw() RateLaw {
	if p.Q10Factor > 0 {
		return RateLaw{Kind: RateLawQ10, Q10: p.Q10Factor}
	}
	k := p.RateSensitivityK
	if k == 0 {
		k = DefaultRateSensitivity
	}
	return RateLaw{Kind: RateLawExponential, K: k}
}

// EffectiveIdeal is the equivalent-minute target at which the dough counts as ready.
func (p Product) EffectiveIdeal() float64 {
	return p.IdealReferenceMinutes * p.CorrectionFactor
}
