package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"controlling_fermentation/internal/models"
)

type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

var _ SnapshotRepo = (*SnapshotSQLite)(nil)

const (
	planSettingsRowID = 1

	upsertSettingsSQL = `
		INSERT INTO plan_settings (id, sim_end, interval_min, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sim_end=excluded.sim_end,
			interval_min=excluded.interval_min,
			updated_at=excluded.updated_at
	`

	deleteBatchesSQL  = `DELETE FROM batches`
	deleteProductsSQL = `DELETE FROM products`
	deleteScheduleSQL = `DELETE FROM schedule_breakpoints`

	insertBreakpointSQL = `
		INSERT INTO schedule_breakpoints (position, time_min, temp_c)
		VALUES (?, ?, ?)
	`

	insertProductSQL = `
		INSERT INTO products (key, position, name, ideal_ref_min, ref_ferment_pct, rate_k, q10, alpha, correction)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	insertBatchSQL = `
		INSERT INTO batches (id, position, name, start_min, product_key, ferment_pct, target_min, ideal_ref_min)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectSettingsSQL = `SELECT sim_end, interval_min FROM plan_settings WHERE id=?`
	selectScheduleSQL = `SELECT time_min, temp_c FROM schedule_breakpoints ORDER BY position ASC`

	selectProductsSQL = `
		SELECT key, name, ideal_ref_min, ref_ferment_pct, rate_k, q10, alpha, correction
		FROM products ORDER BY position ASC
	`

	selectBatchesSQL = `
		SELECT id, name, start_min, product_key, ferment_pct, target_min, ideal_ref_min
		FROM batches ORDER BY position ASC
	`
)

// Save replaces the stored snapshot inside a single transaction.
// Batches are written after products so the foreign key holds.
func (r *SnapshotSQLite) Save(ctx context.Context, s models.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, upsertSettingsSQL,
		planSettingsRowID, s.SimulationEnd, s.IntervalMin, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("save plan settings: %w", err)
	}

	for _, stmt := range []string{deleteBatchesSQL, deleteProductsSQL, deleteScheduleSQL} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clear snapshot (%s): %w", stmt, err)
		}
	}

	for i, bp := range s.Schedule {
		if _, err := tx.ExecContext(ctx, insertBreakpointSQL, i, bp.Time, bp.TempC); err != nil {
			return fmt.Errorf("insert breakpoint %d: %w", i, err)
		}
	}
	for i, p := range s.Products {
		if _, err := tx.ExecContext(ctx, insertProductSQL,
			p.Key, i, p.Name,
			p.IdealReferenceMinutes, p.ReferenceFermentationPct,
			p.RateSensitivityK, p.Q10Factor, p.FermentationExponentAlpha, p.CorrectionFactor,
		); err != nil {
			return fmt.Errorf("insert product %q: %w", p.Key, err)
		}
	}
	for i, b := range s.Batches {
		if _, err := tx.ExecContext(ctx, insertBatchSQL,
			b.ID, i, b.Name, b.StartTime, b.ProductKey, b.FermentationPct,
			nullableMinute(b.TargetReadyTime), nullableFloat(b.IdealReferenceMinutes),
		); err != nil {
			return fmt.Errorf("insert batch %q: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot transaction: %w", err)
	}
	return nil
}

// Load reads the stored snapshot.
func (r *SnapshotSQLite) Load(ctx context.Context) (models.Snapshot, error) {
	var s models.Snapshot
	err := r.db.QueryRowContext(ctx, selectSettingsSQL, planSettingsRowID).Scan(&s.SimulationEnd, &s.IntervalMin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, nil // nothing saved yet
		}
		return models.Snapshot{}, fmt.Errorf("load plan settings: %w", err)
	}

	if s.Schedule, err = r.loadSchedule(ctx); err != nil {
		return models.Snapshot{}, err
	}
	if s.Products, err = r.loadProducts(ctx); err != nil {
		return models.Snapshot{}, err
	}
	if s.Batches, err = r.loadBatches(ctx); err != nil {
		return models.Snapshot{}, err
	}
	return s, nil
}

func (r *SnapshotSQLite) loadSchedule(ctx context.Context) ([]models.TemperatureBreakpoint, error) {
	rows, err := r.db.QueryContext(ctx, selectScheduleSQL)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	defer rows.Close()

	var out []models.TemperatureBreakpoint
	for rows.Next() {
		var bp models.TemperatureBreakpoint
		if err := rows.Scan(&bp.Time, &bp.TempC); err != nil {
			return nil, fmt.Errorf("scan breakpoint: %w", err)
		}
		out = append(out, bp)
	}
	return out, rows.Err()
}

func (r *SnapshotSQLite) loadProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.Key,
			&p.Name,
			&p.IdealReferenceMinutes,
			&p.ReferenceFermentationPct,
			&p.RateSensitivityK,
			&p.Q10Factor,
			&p.FermentationExponentAlpha,
			&p.CorrectionFactor,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SnapshotSQLite) loadBatches(ctx context.Context) ([]models.Batch, error) {
	rows, err := r.db.QueryContext(ctx, selectBatchesSQL)
	if err != nil {
		return nil, fmt.Errorf("load batches: %w", err)
	}
	defer rows.Close()

	var out []models.Batch
	for rows.Next() {
		var (
			b      models.Batch
			target sql.NullInt64
			ideal  sql.NullFloat64
		)
		if err := rows.Scan(&b.ID, &b.Name, &b.StartTime, &b.ProductKey, &b.FermentationPct, &target, &ideal); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		if target.Valid {
			t := int(target.Int64)
			b.TargetReadyTime = &t
		}
		if ideal.Valid {
			v := ideal.Float64
			b.IdealReferenceMinutes = &v
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func nullableFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullableMinute(m *int) sql.NullInt64 {
	if m == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*m), Valid: true}
}
