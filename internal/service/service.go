package service

import (
	"context"
	"time"

	"controlling_fermentation/internal/logger"
	"controlling_fermentation/internal/models"
	"controlling_fermentation/internal/repository"
)

// Planner evaluates the stored snapshot.
type Planner interface {
	Snapshot(ctx context.Context) (models.Snapshot, error)
	Plan(ctx context.Context) (models.Plan, error)
	// PlanAt evaluates with the simulation end replaced by the given minute of day.
	PlanAt(ctx context.Context, end int) (models.Plan, error)
}

// Schedule edits the temperature schedule and simulation window.
type Schedule interface {
	GetSchedule(ctx context.Context) ([]models.TemperatureBreakpoint, error)
	SetSchedule(ctx context.Context, schedule []models.TemperatureBreakpoint) ([]models.TemperatureBreakpoint, error)
	SetSimulation(ctx context.Context, p SimulationParams) error
}

// Catalog edits the product catalog.
type Catalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpsertProduct(ctx context.Context, p models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, key string) error
}

// Batches edits the batch list and answers per-batch questions.
type Batches interface {
	ListBatches(ctx context.Context) ([]models.Batch, error)
	AddBatch(ctx context.Context, p BatchParams) (models.Batch, error)
	UpdateBatch(ctx context.Context, id string, p BatchParams) (models.Batch, error)
	RemoveBatch(ctx context.Context, id string) error
	FinishTime(ctx context.Context, id string) (FinishEstimate, error)
}

// Solver inverts the progress model for ad-hoc targets.
type Solver interface {
	SolveStart(ctx context.Context, p SolveStartParams) (StartEstimate, error)
	SolveFermentation(ctx context.Context, p SolveFermentParams) (FermentEstimate, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.PlanEvent, error)
}

// Tracker follows the wall clock and records batches as they become ready.
// Stop via context cancellation in main() for graceful shutdown.
type Tracker interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Planner
	Schedule
	Catalog
	Batches
	Solver
	EventLog
	Tracker
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger) *Service {
	store := newSnapshotStore(repos.SnapshotRepo, repos.EventRepo)
	planner := NewPlannerService(store)
	return &Service{
		Planner:  planner,
		Schedule: NewScheduleService(store),
		Catalog:  NewCatalogService(store),
		Batches:  NewBatchService(store),
		Solver:   NewSolverService(store, log),
		EventLog: NewEventLogService(repos.EventRepo),
		Tracker:  NewTrackerService(planner, repos.EventRepo, time.Now, log),
	}
}
