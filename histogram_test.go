package hdrhistogram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesConfiguration(t *testing.T) {
	_, err := New(0, 100, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = New(10, 15, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = New(1, 100, 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestNewWithLowest1(t *testing.T) {
	h, err := NewWithLowest1(3600000000, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, h.LowestTrackableValue())
	assert.EqualValues(t, 3600000000, h.HighestTrackableValue())
}

func TestIdentityIsUniquePerHistogram(t *testing.T) {
	h1, err := New(1, 1000, 2)
	require.NoError(t, err)
	h2, err := New(1, 1000, 2)
	require.NoError(t, err)
	assert.NotEqual(t, h1.Identity(), h2.Identity())
}

func TestStartEndTimeMetadata(t *testing.T) {
	h, err := New(1, 1000, 2)
	require.NoError(t, err)
	assert.Zero(t, h.StartTimeMs())
	assert.Zero(t, h.EndTimeMs())
	h.SetStartTimeMs(10)
	h.SetEndTimeMs(20)
	assert.EqualValues(t, 10, h.StartTimeMs())
	assert.EqualValues(t, 20, h.EndTimeMs())
}

func TestWordSizeOptionsChangeCounterWidth(t *testing.T) {
	h, err := New(1, 1000, 2, WithWordSize(Word16))
	require.NoError(t, err)

	var overflowed error
	for i := 0; i < 70000 && overflowed == nil; i++ {
		overflowed = h.Record(1)
	}
	require.Error(t, overflowed)
	assert.True(t, errors.Is(overflowed, ErrCountOverflow))
}
