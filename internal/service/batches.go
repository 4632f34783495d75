package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/models"

	"github.com/google/uuid"
)

// finishHorizon is the last minute FinishTime looks at.
const finishHorizon = fermentation.MinutesPerDay - 1

type BatchService struct {
	store *snapshotStore
}

func NewBatchService(store *snapshotStore) *BatchService {
	return &BatchService{store: store}
}

func (s *BatchService) ListBatches(ctx context.Context) ([]models.Batch, error) {
	snap, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Batches, nil
}

// AddBatch appends a batch with a fresh id.
// Without a name it is called after its position and product, like the default batches.
func (s *BatchService) AddBatch(ctx context.Context, p BatchParams) (models.Batch, error) {
	snap, unlock, err := s.store.loadForUpdate(ctx)
	if err != nil {
		return models.Batch{}, err
	}
	defer unlock()

	b := batchFromParams(uuid.NewString(), p)
	if b.Name == "" {
		product, _ := snap.Product(b.ProductKey)
		b.Name = defaultBatchName(len(snap.Batches)+1, product.Name)
	}
	if err := fermentation.ValidateBatch(b, snap.Product); err != nil {
		return models.Batch{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.store.commit(ctx, snap.WithBatch(b), batchEvent(b, "created")); err != nil {
		return models.Batch{}, err
	}
	return b, nil
}

// UpdateBatch replaces every editable field of an existing batch.
func (s *BatchService) UpdateBatch(ctx context.Context, id string, p BatchParams) (models.Batch, error) {
	snap, unlock, err := s.store.loadForUpdate(ctx)
	if err != nil {
		return models.Batch{}, err
	}
	defer unlock()
	prev, ok := snap.Batch(id)
	if !ok {
		return models.Batch{}, fmt.Errorf("%w: batch %q", ErrNotFound, id)
	}

	b := batchFromParams(id, p)
	if b.Name == "" {
		b.Name = prev.Name
	}
	if err := fermentation.ValidateBatch(b, snap.Product); err != nil {
		return models.Batch{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := s.store.commit(ctx, snap.WithBatch(b), batchEvent(b, "updated")); err != nil {
		return models.Batch{}, err
	}
	return b, nil
}

func (s *BatchService) RemoveBatch(ctx context.Context, id string) error {
	snap, unlock, err := s.store.loadForUpdate(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	prev, ok := snap.Batch(id)
	if !ok {
		return fmt.Errorf("%w: batch %q", ErrNotFound, id)
	}
	next, _ := snap.WithoutBatch(id)
	return s.store.commit(ctx, next, batchEvent(prev, "deleted"))
}

// FinishTime looks for the batch's finish over the rest of the day,
// regardless of where the simulation currently ends.
func (s *BatchService) FinishTime(ctx context.Context, id string) (FinishEstimate, error) {
	snap, err := s.store.load(ctx)
	if err != nil {
		return FinishEstimate{}, err
	}
	b, ok := snap.Batch(id)
	if !ok {
		return FinishEstimate{}, fmt.Errorf("%w: batch %q", ErrNotFound, id)
	}
	product, ok := snap.Product(b.ProductKey)
	if !ok {
		return FinishEstimate{}, fmt.Errorf("%w: %w", ErrValidation, fermentation.ErrUnknownProduct)
	}

	profile, err := fermentation.NewProfile(fermentation.NormalizeSchedule(snap.Schedule), finishHorizon, snap.IntervalMin)
	if err != nil {
		return FinishEstimate{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	out := FinishEstimate{BatchID: id, Horizon: finishHorizon}
	if f, ok := profile.FindFinishTime(b.ProductFor(product), b.FermentationPct, b.StartTime); ok {
		out.FinishTime = &f
	}
	return out, nil
}

func batchFromParams(id string, p BatchParams) models.Batch {
	b := models.Batch{
		ID:              id,
		Name:            strings.TrimSpace(p.Name),
		StartTime:       p.StartTime,
		ProductKey:      strings.TrimSpace(p.ProductKey),
		FermentationPct: p.FermentationPct,
	}
	if p.TargetReadyTime != nil {
		t := *p.TargetReadyTime
		b.TargetReadyTime = &t
	}
	if p.IdealReferenceMinutes != nil {
		v := *p.IdealReferenceMinutes
		b.IdealReferenceMinutes = &v
	}
	return b
}

func batchEvent(b models.Batch, action string) models.PlanEvent {
	return models.PlanEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventBatchChange,
		BatchID:     b.ID,
		ProductKey:  b.ProductKey,
		Description: fmt.Sprintf("Batch %q %s", b.Name, action),
		Metadata: map[string]any{
			"action": action,
			"start":  fermentation.FormatClock(b.StartTime),
		},
	}
}
