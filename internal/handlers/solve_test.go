package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"controlling_fermentation/internal/service"
)

func TestSolveStartHandler(t *testing.T) {
	sol := &mockSolver{start: service.StartEstimate{Start: 70, Feasible: true, PredictedFinish: intp(120)}}
	r := newTestRouter(&service.Service{Solver: sol})

	w := doJSON(r, http.MethodPost, "/api/v1/solve/start", `{"product_key":"forma","fermentation_pct":"2,0","target":"02:00"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if sol.lastStart != (service.SolveStartParams{ProductKey: "forma", FermentationPct: 2, Target: 120}) {
		t.Fatalf("unexpected params: %+v", sol.lastStart)
	}
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["start"] != "01:10" || out["feasible"] != true || out["predicted_finish"] != "02:00" {
		t.Fatalf("unexpected body: %+v", out)
	}

	if w := doJSON(r, http.MethodPost, "/api/v1/solve/start", `{"product_key":"forma","fermentation_pct":2}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing target: expected 400, got %d", w.Code)
	}
}

func TestSolveFermentationHandler(t *testing.T) {
	sol := &mockSolver{ferment: service.FermentEstimate{FermentationPct: 1.5}}
	r := newTestRouter(&service.Service{Solver: sol})

	w := doJSON(r, http.MethodPost, "/api/v1/solve/fermentation", `{"product_key":"forma","start":"00:00","target":"01:00"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if sol.lastFerment != (service.SolveFermentParams{ProductKey: "forma", Start: 0, Target: 60}) {
		t.Fatalf("unexpected params: %+v", sol.lastFerment)
	}
	var out service.FermentEstimate
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.FermentationPct != 1.5 || out.Degenerate {
		t.Fatalf("unexpected body: %+v", out)
	}

	sol.err = fmt.Errorf("%w: product %q", service.ErrNotFound, "nope")
	if w := doJSON(r, http.MethodPost, "/api/v1/solve/fermentation", `{"product_key":"nope","start":"00:00","target":"01:00"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
