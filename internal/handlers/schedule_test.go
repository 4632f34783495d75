package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"controlling_fermentation/internal/models"
	"controlling_fermentation/internal/service"
)

func TestScheduleHandlers_GetAndPut(t *testing.T) {
	sch := &mockSchedule{schedule: []models.TemperatureBreakpoint{{Time: 120, TempC: 26}}}
	r := newTestRouter(&service.Service{Schedule: sch})

	w := doJSON(r, http.MethodGet, "/api/v1/schedule", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Breakpoints []struct {
			Time  string  `json:"time"`
			TempC float64 `json:"temp_c"`
		} `json:"breakpoints"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got.Breakpoints) != 1 || got.Breakpoints[0].Time != "02:00" || got.Breakpoints[0].TempC != 26 {
		t.Fatalf("unexpected schedule: %+v", got)
	}

	body := `{"breakpoints":[{"time":"00:00","temp_c":24},{"time":"02:30","temp_c":"26,5"},{"time":"05:00","temp_c":"29.25"}]}`
	w = doJSON(r, http.MethodPut, "/api/v1/schedule", body)
	if w.Code != http.StatusOK {
		t.Fatalf("put status=%d, body=%s", w.Code, w.Body.String())
	}
	want := []models.TemperatureBreakpoint{{Time: 0, TempC: 24}, {Time: 150, TempC: 26.5}, {Time: 300, TempC: 29.25}}
	if len(sch.lastSet) != len(want) {
		t.Fatalf("unexpected set: %+v", sch.lastSet)
	}
	for i := range want {
		if sch.lastSet[i] != want[i] {
			t.Fatalf("breakpoint %d: got %+v want %+v", i, sch.lastSet[i], want[i])
		}
	}
}

func TestScheduleHandlers_PutRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad_clock", `{"breakpoints":[{"time":"24:00","temp_c":24}]}`},
		{"one_digit_minutes", `{"breakpoints":[{"time":"02:3","temp_c":24}]}`},
		{"numeric_time", `{"breakpoints":[{"time":120,"temp_c":24}]}`},
		{"bad_decimal", `{"breakpoints":[{"time":"02:00","temp_c":"abc"}]}`},
		{"missing_breakpoints", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sch := &mockSchedule{}
			w := doJSON(newTestRouter(&service.Service{Schedule: sch}), http.MethodPut, "/api/v1/schedule", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
			}
			if sch.setCalls != 0 {
				t.Fatalf("service must not be called")
			}
		})
	}
}

func TestScheduleHandlers_ServiceValidation(t *testing.T) {
	sch := &mockSchedule{setErr: fmt.Errorf("%w: schedule has no breakpoints", service.ErrValidation)}
	w := doJSON(newTestRouter(&service.Service{Schedule: sch}), http.MethodPut, "/api/v1/schedule", `{"breakpoints":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSimulationHandler(t *testing.T) {
	sch := &mockSchedule{}
	r := newTestRouter(&service.Service{Schedule: sch})

	w := doJSON(r, http.MethodPut, "/api/v1/simulation", `{"end":"06:00","interval_min":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if sch.lastSimulation != (service.SimulationParams{End: 360, IntervalMin: 5}) {
		t.Fatalf("unexpected params: %+v", sch.lastSimulation)
	}

	for _, body := range []string{
		`{"end":"06:00","interval_min":0}`,
		`{"end":"06:00"}`,
		`{"interval_min":10}`,
		`{"end":"6h","interval_min":10}`,
	} {
		if w := doJSON(r, http.MethodPut, "/api/v1/simulation", body); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, w.Code)
		}
	}
}
