// Package history defines the storage interface for completed fights.
package history

import (
	"context"
	"time"

	"github.com/timscodebase/versus/pkg/arena"
)

// Fight is one completed judgment.
type Fight struct {
	ID         string       `json:"id"`
	Opponent1  string       `json:"opponent1"`
	Opponent2  string       `json:"opponent2"`
	Winner     arena.Winner `json:"winner"`
	Transcript string       `json:"transcript"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Driver defines the interface for persisting and retrieving fights in a
// storage backend.
type Driver interface {
	// Put stores a completed fight.
	Put(ctx context.Context, fight *Fight) error

	// Get retrieves a fight by its ID.
	Get(ctx context.Context, id string) (*Fight, error)

	// Recent returns up to limit fights, newest first.
	Recent(ctx context.Context, limit int) ([]*Fight, error)

	// Close closes the store and releases any resources.
	Close() error
}

// NotFoundError is returned when a fight doesn't exist in the store.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return "fight not found"
	}

	return "fight not found: " + e.ID
}
