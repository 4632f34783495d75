package service

import "controlling_fermentation/internal/models"

const (
	defaultSimulationEnd   = 6 * 60
	defaultIntervalMin     = 10
	defaultReferencePct    = 2.0
	hotdogReferencePct     = 3.6
	defaultAlpha           = 1.0
	defaultCorrection      = 1.0
	defaultBatchSpacing    = 30
	defaultBatchNamePrefix = "Massa"
)

// DefaultSnapshot is the bakery's night shift: six doughs started half an hour apart
// in a room that warms from 24 °C to 29 °C.
func DefaultSnapshot() models.Snapshot {
	products := []models.Product{
		defaultProduct("forma", "Forma", 45, defaultReferencePct),
		defaultProduct("sovado", "Sovado", 60, defaultReferencePct),
		defaultProduct("hamburguer", "Hamburguer", 30, defaultReferencePct),
		defaultProduct("hotdog", "Hot dog", 270, hotdogReferencePct),
		defaultProduct("cara", "Cara", 50, defaultReferencePct),
		defaultProduct("minicara", "Mini cara", 45, defaultReferencePct),
	}

	batchProducts := []struct {
		key string
		pct float64
	}{
		{"forma", 2.0},
		{"hamburguer", 2.0},
		{"hotdog", 3.6},
		{"sovado", 2.0},
		{"cara", 2.0},
		{"minicara", 2.0},
	}
	batches := make([]models.Batch, 0, len(batchProducts))
	for i, bp := range batchProducts {
		p, _ := findProduct(products, bp.key)
		batches = append(batches, models.Batch{
			ID:              defaultBatchID(i + 1),
			Name:            defaultBatchName(i+1, p.Name),
			StartTime:       i * defaultBatchSpacing,
			ProductKey:      bp.key,
			FermentationPct: bp.pct,
		})
	}

	return models.Snapshot{
		Schedule: []models.TemperatureBreakpoint{
			{Time: 0, TempC: 24},
			{Time: 2 * 60, TempC: 26},
			{Time: 3 * 60, TempC: 28},
			{Time: 5 * 60, TempC: 29},
		},
		SimulationEnd: defaultSimulationEnd,
		IntervalMin:   defaultIntervalMin,
		Products:      products,
		Batches:       batches,
	}
}

func defaultProduct(key, name string, ideal, refPct float64) models.Product {
	return models.Product{
		Key:                       key,
		Name:                      name,
		IdealReferenceMinutes:     ideal,
		ReferenceFermentationPct:  refPct,
		RateSensitivityK:          models.DefaultRateSensitivity,
		FermentationExponentAlpha: defaultAlpha,
		CorrectionFactor:          defaultCorrection,
	}
}

func findProduct(products []models.Product, key string) (models.Product, bool) {
	for _, p := range products {
		if p.Key == key {
			return p, true
		}
	}
	return models.Product{}, false
}
