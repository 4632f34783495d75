package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"controlling_fermentation/internal/fermentation"
	"controlling_fermentation/internal/models"
)

type CatalogService struct {
	store *snapshotStore
}

func NewCatalogService(store *snapshotStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	snap, err := s.store.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Products, nil
}

// UpsertProduct replaces the product with the same key or appends a new one.
// An empty name falls back to the key.
func (s *CatalogService) UpsertProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.Key = strings.TrimSpace(p.Key)
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = p.Key
	}
	if err := fermentation.ValidateProduct(p); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	snap, unlock, err := s.store.loadForUpdate(ctx)
	if err != nil {
		return models.Product{}, err
	}
	defer unlock()
	action := "created"
	if _, ok := snap.Product(p.Key); ok {
		action = "updated"
	}

	err = s.store.commit(ctx, snap.WithProduct(p), models.PlanEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventProductChange,
		ProductKey:  p.Key,
		Description: fmt.Sprintf("Product %q %s", p.Key, action),
		Metadata: map[string]any{
			"action": action,
			"ideal":  p.IdealReferenceMinutes,
		},
	})
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// DeleteProduct removes a product nobody uses. A product referenced by a batch is a conflict.
func (s *CatalogService) DeleteProduct(ctx context.Context, key string) error {
	snap, unlock, err := s.store.loadForUpdate(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, b := range snap.Batches {
		if b.ProductKey == key {
			return fmt.Errorf("%w: product %q is used by batch %q", ErrConflict, key, b.ID)
		}
	}

	next, ok := snap.WithoutProduct(key)
	if !ok {
		return fmt.Errorf("%w: product %q", ErrNotFound, key)
	}
	return s.store.commit(ctx, next, models.PlanEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventProductChange,
		ProductKey:  key,
		Description: fmt.Sprintf("Product %q deleted", key),
		Metadata:    map[string]any{"action": "deleted"},
	})
}
