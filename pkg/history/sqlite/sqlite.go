// Package sqlite provides a SQLite-backed history driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/timscodebase/versus/pkg/arena"
	"github.com/timscodebase/versus/pkg/history"
)

// Driver implements history.Driver using SQLite as the storage backend.
type Driver struct {
	db *sql.DB
}

// NewDriver creates a new SQLite-backed history driver.
// The dbPath can be a file path or ":memory:" for an in-memory database.
func NewDriver(dbPath string) (*Driver, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	d := &Driver{db: db}

	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return d, nil
}

// migrate creates the necessary tables if they don't exist.
func (d *Driver) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS fights (
		id TEXT PRIMARY KEY,
		opponent1 TEXT NOT NULL,
		opponent2 TEXT NOT NULL,
		winner TEXT NOT NULL,
		transcript TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_fights_created_at ON fights(created_at);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Put stores a completed fight. Re-inserting the same ID is a no-op.
func (d *Driver) Put(ctx context.Context, fight *history.Fight) error {
	if fight == nil {
		return fmt.Errorf("cannot store nil fight")
	}

	query := `INSERT OR IGNORE INTO fights (id, opponent1, opponent2, winner, transcript, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	_, err := d.db.ExecContext(ctx, query,
		fight.ID, fight.Opponent1, fight.Opponent2, string(fight.Winner), fight.Transcript, fight.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert fight: %w", err)
	}

	return nil
}

// Get retrieves a fight by its ID.
func (d *Driver) Get(ctx context.Context, id string) (*history.Fight, error) {
	query := `SELECT id, opponent1, opponent2, winner, transcript, created_at
	          FROM fights WHERE id = ?`

	row := d.db.QueryRowContext(ctx, query, id)

	fight, err := scanFight(row.Scan)
	if err == sql.ErrNoRows {
		return nil, history.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan fight: %w", err)
	}

	return fight, nil
}

// Recent returns up to limit fights, newest first.
func (d *Driver) Recent(ctx context.Context, limit int) ([]*history.Fight, error) {
	query := `SELECT id, opponent1, opponent2, winner, transcript, created_at
	          FROM fights ORDER BY created_at DESC LIMIT ?`

	rows, err := d.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query fights: %w", err)
	}
	defer rows.Close()

	var fights []*history.Fight
	for rows.Next() {
		fight, err := scanFight(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fight: %w", err)
		}
		fights = append(fights, fight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fights: %w", err)
	}

	return fights, nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	return d.db.Close()
}

// scanFight reads one fights row via the given Scan function.
func scanFight(scan func(dest ...any) error) (*history.Fight, error) {
	var fight history.Fight
	var winner string

	err := scan(&fight.ID, &fight.Opponent1, &fight.Opponent2, &winner, &fight.Transcript, &fight.CreatedAt)
	if err != nil {
		return nil, err
	}

	fight.Winner = arena.Winner(winner)
	return &fight, nil
}
