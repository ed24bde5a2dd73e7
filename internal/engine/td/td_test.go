package td_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antigravity/transitcore/internal/engine/td"
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
	"github.com/antigravity/transitcore/internal/timetabletest"
)

func TestSnapshotS1ArrivesAt25ViaOneRide(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := td.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(0, 5, 0)
	require.True(t, ok)
	require.True(t, j.Valid())
	require.EqualValues(t, 25, j.Arrival(0))
	require.Len(t, j.Parts, 1)
	ride, isRide := j.Parts[0].(journey.Ride)
	require.True(t, isRide)
	require.EqualValues(t, 0, ride.First.DepStop)
	require.EqualValues(t, 5, ride.Last.ArrStop)
}

func TestSnapshotS2DepartureTooLateIsAbsent(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := td.NewSnapshot(tt)

	_, ok := eng.EarliestArrival(0, 5, 21)
	require.False(t, ok)
}

func TestSnapshotS3StartMidChain(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := td.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(2, 5, 10)
	require.True(t, ok)
	require.EqualValues(t, 25, j.Arrival(0))
}

func TestSnapshotS4ShortcutTripWins(t *testing.T) {
	tt := timetabletest.ChainWithShortcut(t)
	eng := td.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(0, 5, 0)
	require.True(t, ok)
	require.EqualValues(t, 20, j.Arrival(0))
}

func TestSnapshotS5TrailingWalk(t *testing.T) {
	tt := timetabletest.ChainWithFootpath(t)
	eng := td.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(0, 6, 0)
	require.True(t, ok)
	require.EqualValues(t, 28, j.Arrival(0))
}

func TestSnapshotS6MissingConnectionIsAbsent(t *testing.T) {
	tt := timetabletest.ChainMinusLastConnection(t)
	eng := td.NewSnapshot(tt)

	_, ok := eng.EarliestArrival(0, 5, 0)
	require.False(t, ok)
}

func TestLiveS6DeleteConnectionMakesDestinationUnreachable(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := td.NewLive(tt)

	_, ok := eng.EarliestArrival(0, 5, 0)
	require.True(t, ok)

	oldTrip := tt.Trips[0]
	newTrip := &timetable.Trip{ID: 0, Connections: oldTrip.Connections[:4]}
	require.NoError(t, eng.ApplyUpdate(timetable.DeleteConnection{
		OldTrip: oldTrip,
		NewTrip: newTrip,
		Conn:    timetabletest.LastConnection(),
	}))

	_, ok = eng.EarliestArrival(0, 5, 0)
	require.False(t, ok)
}
