// Package inmemory provides a map-backed history driver, used when no
// SQLite path is configured and in tests.
package inmemory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/timscodebase/versus/pkg/history"
)

// Driver implements history.Driver using an in-memory map.
type Driver struct {
	mu sync.RWMutex

	// fights maps fight IDs to records.
	fights map[string]*history.Fight
}

// NewDriver creates a new in-memory history driver.
func NewDriver() *Driver {
	return &Driver{
		fights: make(map[string]*history.Fight),
	}
}

// Put stores a completed fight.
func (d *Driver) Put(_ context.Context, fight *history.Fight) error {
	if fight == nil {
		return errors.New("cannot store nil fight")
	}
	if fight.ID == "" {
		return errors.New("cannot store fight without an ID")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.fights[fight.ID] = fight
	return nil
}

// Get retrieves a fight by its ID.
func (d *Driver) Get(_ context.Context, id string) (*history.Fight, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fight, ok := d.fights[id]
	if !ok {
		return nil, history.NotFoundError{ID: id}
	}

	return fight, nil
}

// Recent returns up to limit fights, newest first.
func (d *Driver) Recent(_ context.Context, limit int) ([]*history.Fight, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	fights := make([]*history.Fight, 0, len(d.fights))
	for _, fight := range d.fights {
		fights = append(fights, fight)
	}

	sort.Slice(fights, func(i, j int) bool {
		return fights[i].CreatedAt.After(fights[j].CreatedAt)
	})

	if limit > 0 && len(fights) > limit {
		fights = fights[:limit]
	}

	return fights, nil
}

// Close is a no-op for the in-memory driver.
func (d *Driver) Close() error {
	return nil
}
