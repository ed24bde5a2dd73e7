package timetable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antigravity/transitcore/internal/timetable"
)

func TestStopIndexDeduplicatesAndPreservesFirstSeenOrder(t *testing.T) {
	idx := timetable.NewStopIndex(5, 3, 5, 9)
	require.Equal(t, 3, idx.Len())

	i5, ok := idx.Dense(5)
	require.True(t, ok)
	require.Equal(t, 0, i5)

	i3, ok := idx.Dense(3)
	require.True(t, ok)
	require.Equal(t, 1, i3)

	i9, ok := idx.Dense(9)
	require.True(t, ok)
	require.Equal(t, 2, i9)

	require.EqualValues(t, 5, idx.Stop(0))
	require.EqualValues(t, 3, idx.Stop(1))
	require.EqualValues(t, 9, idx.Stop(2))
}

func TestStopIndexDenseUnknownStopIsMissing(t *testing.T) {
	idx := timetable.NewStopIndex(1, 2)
	_, ok := idx.Dense(99)
	require.False(t, ok)
}

func TestStopIndexAddGrowsIndex(t *testing.T) {
	idx := timetable.NewStopIndex()
	require.Equal(t, 0, idx.Len())

	first := idx.Add(42)
	require.Equal(t, 0, first)
	require.Equal(t, 1, idx.Len())

	again := idx.Add(42)
	require.Equal(t, first, again)
	require.Equal(t, 1, idx.Len())

	second := idx.Add(7)
	require.Equal(t, 1, second)
	require.Equal(t, 2, idx.Len())
}
