package hdrhistogram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCountsStore(t *testing.T, store countsStore) {
	t.Helper()

	require.NoError(t, store.increment(0))
	assert.EqualValues(t, 1, store.get(0))

	require.NoError(t, store.add(0, 4))
	assert.EqualValues(t, 5, store.get(0))

	store.set(0, 42)
	assert.EqualValues(t, 42, store.get(0))

	store.addTotal(10)
	assert.EqualValues(t, 10, store.total())
	store.setTotal(3)
	assert.EqualValues(t, 3, store.total())

	store.clear()
	assert.EqualValues(t, 0, store.get(0))
	assert.EqualValues(t, 0, store.total())
}

func TestCounts16(t *testing.T)      { testCountsStore(t, newCounts16(8)) }
func TestCounts32(t *testing.T)      { testCountsStore(t, newCounts32(8)) }
func TestCounts64(t *testing.T)      { testCountsStore(t, newCounts64(8)) }
func TestAtomicCounts64(t *testing.T) { testCountsStore(t, newAtomicCounts64(8)) }

func TestCounts16Overflow(t *testing.T) {
	c := newCounts16(4)
	err := c.add(0, 70000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCountOverflow))
}

func TestCounts32Overflow(t *testing.T) {
	c := newCounts32(4)
	err := c.add(0, 1<<33)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCountOverflow))
}

func TestCounts64NeverOverflows(t *testing.T) {
	c := newCounts64(4)
	require.NoError(t, c.add(0, 1<<62))
	require.NoError(t, c.add(0, 1<<62))
}

func TestCountsLen(t *testing.T) {
	assert.Equal(t, 8, newCounts16(8).len())
	assert.Equal(t, 8, newCounts32(8).len())
	assert.Equal(t, 8, newCounts64(8).len())
	assert.Equal(t, 8, newAtomicCounts64(8).len())
}
