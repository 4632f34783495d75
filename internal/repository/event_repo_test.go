package repository

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"controlling_fermentation/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var eventColumns = []string{"id", "occurred_at", "type", "batch_id", "product_key", "message", "meta"}

func TestEventSQLite_Append_StoresBatchAndProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	at := time.Date(2025, 3, 1, 4, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO plan_events")).
		WithArgs("evt-1", "2025-03-01 07:30:00", models.EventBatchReady,
			"massa-1", "forma", "Massa 1 is ready", `{"at":"07:30"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewEventSQLite(db).Append(context.Background(), models.PlanEvent{
		EventID:     "evt-1",
		OccurredAt:  at,
		Type:        " batch_ready",
		BatchID:     "massa-1",
		ProductKey:  "forma",
		Description: "Massa 1 is ready",
		Metadata:    map[string]any{"at": "07:30"},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventSQLite_Append_ScheduleEventHasNoBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO plan_events")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), models.EventScheduleChange, nil, nil, "schedule", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewEventSQLite(db).Append(context.Background(), models.PlanEvent{
		Type:        models.EventScheduleChange,
		Description: "schedule",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventSQLite_Append_RejectsUnencodableMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	err = NewEventSQLite(db).Append(context.Background(), models.PlanEvent{
		Type:     models.EventSolve,
		Metadata: map[string]any{"pct": math.Inf(1)},
	})
	if err == nil {
		t.Fatalf("expected encode error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("nothing should be written: %v", err)
	}
}

func TestEventSQLite_List_FiltersByBatchAndType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(eventColumns).
		AddRow("e1", day.Add(time.Hour), "BATCH_READY", "massa-1", "forma", "ready", `{"at":"01:00"}`).
		AddRow("e2", day.Add(2*time.Hour), "BATCH_READY", "massa-1", "forma", "ready", `not json`)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, occurred_at, type, batch_id, product_key, message, meta FROM plan_events " +
			"WHERE occurred_at >= ? AND type = ? AND batch_id = ? ORDER BY occurred_at ASC",
	)).
		WithArgs("2025-03-01 00:00:00", "BATCH_READY", "massa-1").
		WillReturnRows(rows)

	got, err := NewEventSQLite(db).List(context.Background(), EventQuery{
		From:    day,
		Type:    "batch_ready",
		BatchID: "massa-1",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].BatchID != "massa-1" || got[0].ProductKey != "forma" {
		t.Fatalf("unexpected events: %+v", got)
	}
	if meta, ok := got[0].Metadata.(map[string]any); !ok || meta["at"] != "01:00" {
		t.Fatalf("metadata not decoded: %#v", got[0].Metadata)
	}
	if got[1].Metadata != "not json" {
		t.Fatalf("malformed metadata should be kept raw, got %#v", got[1].Metadata)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventSQLite_List_ProductWithoutBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(eventColumns).
		AddRow("e1", time.Now(), "PRODUCT_CHANGE", nil, "cara", "Product cara updated", nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM plan_events WHERE product_key = ? ORDER BY occurred_at ASC")).
		WithArgs("cara").
		WillReturnRows(rows)

	got, err := NewEventSQLite(db).List(context.Background(), EventQuery{ProductKey: "cara"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].BatchID != "" || got[0].Metadata != nil {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestEventSQLite_List_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	boom := errors.New("disk I/O error")
	mock.ExpectQuery(regexp.QuoteMeta("FROM plan_events ORDER BY occurred_at ASC")).WillReturnError(boom)

	if _, err := NewEventSQLite(db).List(context.Background(), EventQuery{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}
