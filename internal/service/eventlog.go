package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"controlling_fermentation/internal/models"
	"controlling_fermentation/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// List returns plan events oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.PlanEvent, error) {
	q, err := eventQuery(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return s.eventRepo.List(ctx, q)
}

// eventQuery checks a filter and turns it into a repository query.
// "batch-ready" and " Batch_Ready" both select BATCH_READY.
func eventQuery(f LogFilter) (repository.EventQuery, error) {
	q := repository.EventQuery{
		From:       utcOrZero(f.From),
		To:         utcOrZero(f.To),
		Type:       strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(f.Type)), "-", "_"),
		BatchID:    strings.TrimSpace(f.BatchID),
		ProductKey: strings.TrimSpace(f.ProductKey),
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return repository.EventQuery{}, fmt.Errorf("from %s is after to %s", q.From.Format(time.RFC3339), q.To.Format(time.RFC3339))
	}
	if q.Type != "" && !models.IsEventType(q.Type) {
		return repository.EventQuery{}, fmt.Errorf("unknown event type %q", f.Type)
	}
	return q, nil
}

func utcOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
