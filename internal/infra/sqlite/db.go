// Package sqlite provides SQLite-based persistent storage for Resolve.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations. History, votes, badges, and
// member lists are JSON text columns: they are always read and written
// whole, never queried into.
func (d *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			group_id       TEXT NOT NULL DEFAULT '',
			score          REAL NOT NULL DEFAULT 0,
			monthly_score  REAL NOT NULL DEFAULT 0,
			streak         INTEGER NOT NULL DEFAULT 0,
			rank           INTEGER NOT NULL DEFAULT 0,
			rank_change    TEXT NOT NULL DEFAULT '',
			seasonal_label TEXT NOT NULL DEFAULT '',
			honesty_score  INTEGER NOT NULL DEFAULT 100,
			badges         TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_group ON users(group_id)`,

		`CREATE TABLE IF NOT EXISTS groups (
			id                           TEXT PRIMARY KEY,
			name                         TEXT NOT NULL,
			member_ids                   TEXT NOT NULL DEFAULT '[]',
			daily_hero_id                TEXT NOT NULL DEFAULT '',
			last_hero_selection_date     TEXT NOT NULL DEFAULT '',
			weekly_comeback_hero_id      TEXT NOT NULL DEFAULT '',
			last_comeback_selection_date TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS resolutions (
			id                   TEXT PRIMARY KEY,
			owner_id             TEXT NOT NULL,
			created_at           INTEGER NOT NULL,
			title                TEXT NOT NULL,
			category             TEXT NOT NULL DEFAULT '',
			declared_difficulty  INTEGER NOT NULL,
			effective_difficulty REAL NOT NULL,
			is_private           BOOLEAN NOT NULL DEFAULT 0,
			history              TEXT NOT NULL DEFAULT '{}',
			peer_votes           TEXT NOT NULL DEFAULT '{}',
			current_streak       INTEGER NOT NULL DEFAULT 0,
			today_status         TEXT NOT NULL DEFAULT 'UNCHECKED',
			archived_at          INTEGER,
			archived_reason      TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resolutions_owner ON resolutions(owner_id)`,

		`CREATE TABLE IF NOT EXISTS feed (
			id         TEXT PRIMARY KEY,
			type       TEXT NOT NULL,
			user_id    TEXT NOT NULL DEFAULT '',
			user_name  TEXT NOT NULL DEFAULT '',
			message    TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feed_created ON feed(created_at)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
