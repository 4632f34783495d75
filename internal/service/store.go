package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/models"
	"controlling_fermentation/internal/repository"

	"github.com/google/uuid"
)

// snapshotStore is the load/validate/save cycle shared by the editing services.
// Edits go through loadForUpdate so two requests never commit over each other.
type snapshotStore struct {
	mu        sync.Mutex
	snapshots repository.SnapshotRepo
	events    repository.EventRepo
}

func newSnapshotStore(snapshots repository.SnapshotRepo, events repository.EventRepo) *snapshotStore {
	return &snapshotStore{snapshots: snapshots, events: events}
}

// load returns the stored snapshot, or the default one when nothing is stored yet.
func (s *snapshotStore) load(ctx context.Context) (models.Snapshot, error) {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	if snap.IsZero() {
		return DefaultSnapshot(), nil
	}
	return snap, nil
}

// loadForUpdate is load for a caller that will commit. It holds the edit lock
// until the returned unlock is called.
func (s *snapshotStore) loadForUpdate(ctx context.Context) (models.Snapshot, func(), error) {
	s.mu.Lock()
	snap, err := s.load(ctx)
	if err != nil {
		s.mu.Unlock()
		return models.Snapshot{}, nil, err
	}
	return snap, s.mu.Unlock, nil
}

// commit validates and stores next, then records what changed.
func (s *snapshotStore) commit(ctx context.Context, next models.Snapshot, ev models.PlanEvent) error {
	if err := fermentation.ValidateSnapshot(next); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := s.snapshots.Save(ctx, next); err != nil {
		return err
	}
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	return s.events.Append(ctx, ev)
}

func defaultBatchID(n int) string {
	return "massa-" + strconv.Itoa(n)
}

func defaultBatchName(n int, productName string) string {
	return fmt.Sprintf("%s %d - %s", defaultBatchNamePrefix, n, productName)
}
