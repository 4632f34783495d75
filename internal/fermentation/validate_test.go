package fermentation

import (
	"fmt"
	"math"
	"testing"

	"controlling_fermentation/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	bad := 1440
	zero, nan := 0.0, math.NaN()
	cases := []struct {
		name   string
		mutate func(*models.Snapshot)
		want   error
	}{
		{"valid", func(*models.Snapshot) {}, nil},
		{"empty_schedule", func(s *models.Snapshot) { s.Schedule = nil }, ErrInvalidProfile},
		{"breakpoint_out_of_day", func(s *models.Snapshot) { s.Schedule[0].Time = 1440 }, ErrInvalidProfile},
		{"nan_temperature", func(s *models.Snapshot) { s.Schedule[0].TempC = math.NaN() }, ErrInvalidNumber},
		{"end_out_of_day", func(s *models.Snapshot) { s.SimulationEnd = -5 }, ErrInvalidProfile},
		{"interval_zero", func(s *models.Snapshot) { s.IntervalMin = 0 }, ErrInvalidProfile},
		{"ideal_zero", func(s *models.Snapshot) { s.Products[0].IdealReferenceMinutes = 0 }, ErrInvalidProduct},
		{"correction_negative", func(s *models.Snapshot) { s.Products[0].CorrectionFactor = -1 }, ErrInvalidProduct},
		{"reference_pct_nan", func(s *models.Snapshot) { s.Products[0].ReferenceFermentationPct = math.NaN() }, ErrInvalidProduct},
		{"q10_negative", func(s *models.Snapshot) { s.Products[0].Q10Factor = -2 }, ErrInvalidProduct},
		{"duplicate_product", func(s *models.Snapshot) { s.Products = append(s.Products, s.Products[0]) }, ErrInvalidProduct},
		{"batch_pct_zero", func(s *models.Snapshot) { s.Batches[0].FermentationPct = 0 }, ErrInvalidBatch},
		{"batch_target_out_of_day", func(s *models.Snapshot) { s.Batches[0].TargetReadyTime = &bad }, ErrInvalidBatch},
		{"batch_unknown_product", func(s *models.Snapshot) { s.Batches[0].ProductKey = "x" }, ErrUnknownProduct},
		{"duplicate_batch", func(s *models.Snapshot) { s.Batches[1].ID = s.Batches[0].ID }, ErrInvalidBatch},
		{"batch_ideal_zero", func(s *models.Snapshot) { s.Batches[0].IdealReferenceMinutes = &zero }, ErrInvalidBatch},
		{"batch_ideal_nan", func(s *models.Snapshot) { s.Batches[1].IdealReferenceMinutes = &nan }, ErrInvalidBatch},
		{"full_plan", func(s *models.Snapshot) { s.Batches = numberedBatches(MaxBatches) }, nil},
		{"too_many_batches", func(s *models.Snapshot) { s.Batches = numberedBatches(MaxBatches + 1) }, ErrInvalidBatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := scenarioSnapshot().Clone()
			tc.mutate(&s)
			err := ValidateSnapshot(s)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateProduct_NegativeAlphaIsAccepted(t *testing.T) {
	p := scenarioProduct()
	p.FermentationExponentAlpha = -1
	assert.NoError(t, ValidateProduct(p))
}

func numberedBatches(n int) []models.Batch {
	out := make([]models.Batch, n)
	for i := range out {
		out[i] = models.Batch{
			ID: fmt.Sprintf("b%d", i+1), Name: fmt.Sprintf("Massa %d", i+1),
			ProductKey: "forma", FermentationPct: 2,
		}
	}
	return out
}
