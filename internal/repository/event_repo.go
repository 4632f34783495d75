package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"controlling_fermentation/internal/models"

	"github.com/google/uuid"
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

var _ EventRepo = (*EventSQLite)(nil)

// EventQuery selects plan events. Zero fields do not filter.
type EventQuery struct {
	From       time.Time // inclusive
	To         time.Time // inclusive
	Type       string
	BatchID    string
	ProductKey string
}

const (
	// sqliteTimestampLayout matches SQLite's TIMESTAMP text form.
	sqliteTimestampLayout = "2006-01-02 15:04:05"

	insertEventSQL = `
		INSERT INTO plan_events (id, occurred_at, type, batch_id, product_key, message, meta)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectEventsSQL = `SELECT id, occurred_at, type, batch_id, product_key, message, meta FROM plan_events`
)

// Append stores an event, filling in a missing id and time.
func (r *EventSQLite) Append(ctx context.Context, e models.PlanEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	var meta sql.NullString
	if e.Metadata != nil {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("encode metadata of %s event: %w", e.Type, err)
		}
		meta = sql.NullString{String: string(b), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.OccurredAt.UTC().Format(sqliteTimestampLayout),
		normalizeType(e.Type),
		nullableText(e.BatchID),
		nullableText(e.ProductKey),
		e.Description,
		meta,
	)
	if err != nil {
		return fmt.Errorf("insert %s event: %w", e.Type, err)
	}
	return nil
}

// List returns the events matching q, oldest first.
func (r *EventSQLite) List(ctx context.Context, q EventQuery) ([]models.PlanEvent, error) {
	where, args := q.where()
	rows, err := r.db.QueryContext(ctx, selectEventsSQL+where+" ORDER BY occurred_at ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]models.PlanEvent, 0, 64)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (q EventQuery) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		conds = append(conds, cond)
		args = append(args, arg)
	}

	if !q.From.IsZero() {
		add("occurred_at >= ?", q.From.UTC().Format(sqliteTimestampLayout))
	}
	if !q.To.IsZero() {
		add("occurred_at <= ?", q.To.UTC().Format(sqliteTimestampLayout))
	}
	if typ := normalizeType(q.Type); typ != "" {
		add("type = ?", typ)
	}
	if q.BatchID != "" {
		add("batch_id = ?", q.BatchID)
	}
	if q.ProductKey != "" {
		add("product_key = ?", q.ProductKey)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanEvent(rows *sql.Rows) (models.PlanEvent, error) {
	var (
		ev                  models.PlanEvent
		batchID, productKey sql.NullString
		meta                sql.NullString
	)
	if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Type, &batchID, &productKey, &ev.Description, &meta); err != nil {
		return models.PlanEvent{}, fmt.Errorf("scan event: %w", err)
	}
	ev.OccurredAt = ev.OccurredAt.UTC()
	ev.BatchID = batchID.String
	ev.ProductKey = productKey.String

	if meta.Valid && meta.String != "" {
		var v any
		if err := json.Unmarshal([]byte(meta.String), &v); err == nil {
			ev.Metadata = v
		} else {
			ev.Metadata = meta.String // keep raw if malformed
		}
	}
	return ev, nil
}

func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func normalizeType(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
