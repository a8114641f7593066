package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoothPoolRejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -7} {
		if _, err := NewBoothPool(n); err == nil {
			t.Errorf("expected error for booth count %d, got nil", n)
		}
	}
}

func TestBoothPoolPopsEarliestDeparture(t *testing.T) {
	pool, err := NewBoothPool(3)
	require.NoError(t, err)

	pool.Add(42)
	pool.Add(7)
	pool.Add(19)

	assert.Equal(t, 7.0, pool.PopEarliest())
	assert.Equal(t, 19.0, pool.PopEarliest())
	assert.Equal(t, 42.0, pool.PopEarliest())
	assert.Equal(t, 0, pool.Len())
}

func TestBoothPoolFull(t *testing.T) {
	pool, err := NewBoothPool(2)
	require.NoError(t, err)

	assert.False(t, pool.Full())
	pool.Add(1)
	assert.False(t, pool.Full())
	pool.Add(2)
	assert.True(t, pool.Full())

	pool.PopEarliest()
	assert.False(t, pool.Full())
}

func TestBoothPoolEarliest(t *testing.T) {
	pool, err := NewBoothPool(2)
	require.NoError(t, err)

	_, ok := pool.Earliest()
	assert.False(t, ok)

	pool.Add(9)
	pool.Add(4)
	earliest, ok := pool.Earliest()
	assert.True(t, ok)
	assert.Equal(t, 4.0, earliest)
	// Earliest peeks without removing.
	assert.Equal(t, 2, pool.Len())
}

func TestBoothPoolAddPanicsWhenFull(t *testing.T) {
	pool, err := NewBoothPool(1)
	require.NoError(t, err)
	pool.Add(1)

	assert.Panics(t, func() { pool.Add(2) })
}

func TestBoothPoolPopPanicsWhenEmpty(t *testing.T) {
	pool, err := NewBoothPool(1)
	require.NoError(t, err)

	assert.Panics(t, func() { pool.PopEarliest() })
}
