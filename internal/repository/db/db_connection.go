package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// SQLite serializes writers anyway; one connection keeps transactions simple.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaPlanSettings = `
CREATE TABLE IF NOT EXISTS plan_settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    sim_end INTEGER NOT NULL,
    interval_min INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaScheduleBreakpoints = `
CREATE TABLE IF NOT EXISTS schedule_breakpoints (
    position INTEGER PRIMARY KEY,
    time_min INTEGER NOT NULL,
    temp_c REAL NOT NULL
);
`

const schemaProducts = `
CREATE TABLE IF NOT EXISTS products (
    key TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    ideal_ref_min REAL NOT NULL,
    ref_ferment_pct REAL NOT NULL,
    rate_k REAL NOT NULL,
    q10 REAL NOT NULL,
    alpha REAL NOT NULL,
    correction REAL NOT NULL
);
`

const schemaBatches = `
CREATE TABLE IF NOT EXISTS batches (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    start_min INTEGER NOT NULL,
    product_key TEXT NOT NULL REFERENCES products(key),
    ferment_pct REAL NOT NULL,
    target_min INTEGER,
    ideal_ref_min REAL
);
`

const schemaPlanEvents = `
CREATE TABLE IF NOT EXISTS plan_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    batch_id TEXT,
    product_key TEXT,
    message TEXT NOT NULL,
    meta TEXT
);
CREATE INDEX IF NOT EXISTS idx_plan_events_type_time ON plan_events(type, occurred_at);
CREATE INDEX IF NOT EXISTS idx_plan_events_batch ON plan_events(batch_id);
CREATE INDEX IF NOT EXISTS idx_plan_events_product ON plan_events(product_key);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaPlanSettings,
		schemaScheduleBreakpoints,
		schemaProducts,
		schemaBatches,
		schemaPlanEvents,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
