package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"controlling_fermentation/internal/models"
	"controlling_fermentation/internal/service"
)

func testPlan() models.Plan {
	pct := 1.5
	return models.Plan{
		SimulationEnd: 360,
		IntervalMin:   10,
		Samples: []models.TemperatureSample{
			{Time: 0, TempC: 24},
			{Time: 10, TempC: 24},
		},
		Results: []models.BatchResult{
			{
				BatchID:                      "massa-1",
				Name:                         "Massa 1 - Forma",
				ProductKey:                   "forma",
				StartTime:                    90,
				FermentationPct:              2,
				AccumulatedEquivalentMinutes: 45.3,
				PercentComplete:              100,
				PredictedFinishTime:          intp(140),
				TargetReadyTime:              intp(150),
				ErrorVsTarget:                intp(-10),
				SuggestedStartTime:           intp(100),
				SuggestedStartFeasible:       true,
				SuggestedFermentationPct:     &pct,
			},
			{BatchID: "massa-2", StartTime: 1439},
		},
	}
}

func TestPlanHandler_FormatsClockTimes(t *testing.T) {
	s := &service.Service{Planner: &mockPlanner{plan: testPlan()}}
	r := newTestRouter(s)

	w := doJSON(r, http.MethodGet, "/api/v1/plan", "")
	if w.Code != http.StatusOK {
		t.Fatalf("plan status=%d, body=%s", w.Code, w.Body.String())
	}

	var out struct {
		SimulationEnd string `json:"simulation_end"`
		Samples       []struct {
			Time string `json:"time"`
		} `json:"samples"`
		Results []map[string]any `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	if out.SimulationEnd != "06:00" || out.Samples[1].Time != "00:10" {
		t.Fatalf("unexpected times: %+v", out)
	}

	first := out.Results[0]
	for key, want := range map[string]any{
		"start_time":                 "01:30",
		"predicted_finish_time":      "02:20",
		"target_ready_time":          "02:30",
		"suggested_start_time":       "01:40",
		"suggested_start_feasible":   true,
		"error_vs_target":            float64(-10),
		"suggested_fermentation_pct": 1.5,
	} {
		if first[key] != want {
			t.Fatalf("%s = %v, want %v", key, first[key], want)
		}
	}

	second := out.Results[1]
	if second["start_time"] != "23:59" || second["predicted_finish_time"] != nil {
		t.Fatalf("unexpected second result: %+v", second)
	}
	if _, ok := second["suggested_start_feasible"]; ok {
		t.Fatalf("feasibility must be omitted without a target: %+v", second)
	}
}

func TestPlanHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad interval", service.ErrValidation), http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		s := &service.Service{Planner: &mockPlanner{err: tc.err}}
		w := doJSON(newTestRouter(s), http.MethodGet, "/api/v1/plan", "")
		if w.Code != tc.want {
			t.Fatalf("%v: status=%d, want %d", tc.err, w.Code, tc.want)
		}
	}
}

func TestSamplesHandler(t *testing.T) {
	s := &service.Service{Planner: &mockPlanner{plan: testPlan()}}
	w := doJSON(newTestRouter(s), http.MethodGet, "/api/v1/samples", "")
	if w.Code != http.StatusOK {
		t.Fatalf("samples status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		IntervalMin int `json:"interval_min"`
		Samples     []struct {
			Time  string  `json:"time"`
			TempC float64 `json:"temp_c"`
		} `json:"samples"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.IntervalMin != 10 || len(out.Samples) != 2 || out.Samples[0].Time != "00:00" {
		t.Fatalf("unexpected samples: %+v", out)
	}
}

func TestHealth(t *testing.T) {
	w := doJSON(newTestRouter(&service.Service{}), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}
