package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"controlling_fermentation/internal/models"
	"controlling_fermentation/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockPlanner struct {
	plan   models.Plan
	err    error
	calls  int
	lastAt int
}

func (m *mockPlanner) Snapshot(ctx context.Context) (models.Snapshot, error) {
	return models.Snapshot{}, m.err
}
func (m *mockPlanner) Plan(ctx context.Context) (models.Plan, error) {
	m.calls++
	return m.plan, m.err
}
func (m *mockPlanner) PlanAt(ctx context.Context, end int) (models.Plan, error) {
	m.calls++
	m.lastAt = end
	return m.plan, m.err
}

type mockSchedule struct {
	schedule       []models.TemperatureBreakpoint
	getErr         error
	setErr         error
	simErr         error
	lastSet        []models.TemperatureBreakpoint
	lastSimulation service.SimulationParams
	setCalls       int
}

func (m *mockSchedule) GetSchedule(ctx context.Context) ([]models.TemperatureBreakpoint, error) {
	return m.schedule, m.getErr
}
func (m *mockSchedule) SetSchedule(ctx context.Context, s []models.TemperatureBreakpoint) ([]models.TemperatureBreakpoint, error) {
	m.setCalls++
	m.lastSet = s
	if m.setErr != nil {
		return nil, m.setErr
	}
	return s, nil
}
func (m *mockSchedule) SetSimulation(ctx context.Context, p service.SimulationParams) error {
	m.lastSimulation = p
	return m.simErr
}

type mockCatalog struct {
	products    []models.Product
	listErr     error
	upsertErr   error
	deleteErr   error
	lastUpsert  models.Product
	lastDeleted string
}

func (m *mockCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	return m.products, m.listErr
}
func (m *mockCatalog) UpsertProduct(ctx context.Context, p models.Product) (models.Product, error) {
	m.lastUpsert = p
	return p, m.upsertErr
}
func (m *mockCatalog) DeleteProduct(ctx context.Context, key string) error {
	m.lastDeleted = key
	return m.deleteErr
}

type mockBatches struct {
	batches    []models.Batch
	err        error
	finish     service.FinishEstimate
	lastID     string
	lastParams service.BatchParams
	addCalls   int
}

func (m *mockBatches) ListBatches(ctx context.Context) ([]models.Batch, error) {
	return m.batches, m.err
}
func (m *mockBatches) AddBatch(ctx context.Context, p service.BatchParams) (models.Batch, error) {
	m.addCalls++
	m.lastParams = p
	return paramsToBatch("new-id", p), m.err
}
func (m *mockBatches) UpdateBatch(ctx context.Context, id string, p service.BatchParams) (models.Batch, error) {
	m.lastID = id
	m.lastParams = p
	return paramsToBatch(id, p), m.err
}
func (m *mockBatches) RemoveBatch(ctx context.Context, id string) error {
	m.lastID = id
	return m.err
}
func (m *mockBatches) FinishTime(ctx context.Context, id string) (service.FinishEstimate, error) {
	m.lastID = id
	return m.finish, m.err
}

func paramsToBatch(id string, p service.BatchParams) models.Batch {
	return models.Batch{
		ID:                    id,
		Name:                  p.Name,
		StartTime:             p.StartTime,
		ProductKey:            p.ProductKey,
		FermentationPct:       p.FermentationPct,
		TargetReadyTime:       p.TargetReadyTime,
		IdealReferenceMinutes: p.IdealReferenceMinutes,
	}
}

type mockSolver struct {
	start       service.StartEstimate
	ferment     service.FermentEstimate
	err         error
	lastStart   service.SolveStartParams
	lastFerment service.SolveFermentParams
}

func (m *mockSolver) SolveStart(ctx context.Context, p service.SolveStartParams) (service.StartEstimate, error) {
	m.lastStart = p
	return m.start, m.err
}
func (m *mockSolver) SolveFermentation(ctx context.Context, p service.SolveFermentParams) (service.FermentEstimate, error) {
	m.lastFerment = p
	return m.ferment, m.err
}

type mockEventLog struct {
	resp  []models.PlanEvent
	err   error
	calls int
	last  service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.PlanEvent, error) {
	m.calls++
	m.last = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func intp(v int) *int { return &v }

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}
