// Package catalog holds the read-only list of events available for
// registration. The data set is a fixture; the catalog is the system's
// external input, not a persistence layer.
package catalog

import (
	"errors"
	"sync"

	"github.com/Amuniare/eventease/internal/model"
)

// ErrNotFound is returned when a requested event does not exist.
var ErrNotFound = errors.New("event not found")

// Catalog is an ordered, in-memory event list. Reads hand out copies so
// callers cannot mutate the catalog through a returned Event.
type Catalog struct {
	mu     sync.RWMutex
	events []model.Event
}

// New returns a catalog seeded with the fixture events.
func New() *Catalog {
	events := make([]model.Event, len(fixtureEvents))
	copy(events, fixtureEvents)
	return &Catalog{events: events}
}

// List returns all events in catalog order.
func (c *Catalog) List() []model.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Event, len(c.events))
	copy(out, c.events)
	return out
}

// GetByID returns a single event or ErrNotFound.
func (c *Catalog) GetByID(id int) (model.Event, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, ErrNotFound
}

// IncrementRegistrations bumps the aggregate registration count for an event
// when seats remain. It reports whether the count changed.
func (c *Catalog) IncrementRegistrations(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.events {
		if c.events[i].ID != id {
			continue
		}
		if !c.events[i].IsAvailable() {
			return false
		}
		c.events[i].Registrations++
		return true
	}
	return false
}
