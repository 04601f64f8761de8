package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ReturnsAllEventsInOrder(t *testing.T) {
	c := New()

	events := c.List()
	require.Len(t, events, 10)
	for i, e := range events {
		assert.Equal(t, i+1, e.ID)
	}
	assert.Equal(t, "Annual Tech Conference 2025", events[0].Name)
	assert.Equal(t, "Year-End Celebration", events[9].Name)
}

func TestList_HandsOutCopies(t *testing.T) {
	c := New()

	events := c.List()
	events[0].Name = "mutated"

	fresh, err := c.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Annual Tech Conference 2025", fresh.Name)
}

func TestGetByID(t *testing.T) {
	c := New()

	event, err := c.GetByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Startup Pitch Competition", event.Name)
	assert.Equal(t, 300, event.Capacity)
	assert.True(t, event.IsAvailable())
	assert.Equal(t, 144, event.SpotsRemaining())

	_, err = c.GetByID(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIncrementRegistrations_StopsAtCapacity(t *testing.T) {
	c := New()

	// Event 4 starts at 72 of 80.
	for i := 0; i < 8; i++ {
		assert.True(t, c.IncrementRegistrations(4))
	}
	assert.False(t, c.IncrementRegistrations(4), "full event rejects increments")

	event, err := c.GetByID(4)
	require.NoError(t, err)
	assert.False(t, event.IsAvailable())
	assert.Zero(t, event.SpotsRemaining())
}

func TestIncrementRegistrations_UnknownEvent(t *testing.T) {
	c := New()
	assert.False(t, c.IncrementRegistrations(999))
}
