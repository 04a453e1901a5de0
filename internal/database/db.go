package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the sqlite handle backing the dashboard.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the sqlite file at path and brings the schema up to date.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// Single writer; sqlite serialises anyway.
	conn.SetMaxOpenConns(1)

	d := &Database{DB: conn, dbFile: path}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("path", path).Msg("database opened")
	return d, nil
}

// Close releases the underlying handle.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the sqlite file location.
func (d *Database) Path() string { return d.dbFile }

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Warn().Err(rbErr).Msg("rollback failed")
		}
		return err
	}
	return tx.Commit()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			icon TEXT,
			category TEXT DEFAULT 'spiritual',
			completed INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 0,
			position INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS days (
			date TEXT PRIMARY KEY,
			prayers_completed INTEGER DEFAULT 0,
			tasbeeh_count INTEGER DEFAULT 0,
			tasbeeh_goal INTEGER DEFAULT 0,
			habits_completed INTEGER DEFAULT 0,
			habits_total INTEGER DEFAULT 0,
			recorded_at TEXT NOT NULL
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate applies additive changes to databases created by older builds.
// app_state predates payload checksums.
func (d *Database) migrate(ctx context.Context) error {
	if err := d.addColumn(ctx, "app_state", "checksum", "TEXT"); err != nil {
		return err
	}
	_, err := d.DB.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_habits_position ON habits(position)")
	return err
}

func (d *Database) addColumn(ctx context.Context, table, column, decl string) error {
	cols, err := d.columns(ctx, table)
	if err != nil {
		return err
	}
	for _, c := range cols {
		if c == column {
			return nil
		}
	}
	if _, err := d.DB.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl)); err != nil {
		return fmt.Errorf("add %s.%s: %w", table, column, err)
	}
	return nil
}

func (d *Database) columns(ctx context.Context, table string) ([]string, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
