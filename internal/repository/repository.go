package repository

import (
	"context"
	"database/sql"

	"controlling_fermentation/internal/models"
)

// SnapshotRepo persists the whole planning snapshot. Save replaces what was stored.
type SnapshotRepo interface {
	Save(ctx context.Context, s models.Snapshot) error
	// Load returns a zero Snapshot and no error when nothing has been saved yet.
	Load(ctx context.Context) (models.Snapshot, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.PlanEvent) error
	List(ctx context.Context, q EventQuery) ([]models.PlanEvent, error)
}

type Repository struct {
	SnapshotRepo SnapshotRepo
	EventRepo    EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SnapshotRepo: NewSnapshotSQLite(db),
		EventRepo:    NewEventSQLite(db),
	}
}
