package raptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antigravity/transitcore/internal/engine/raptor"
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
	"github.com/antigravity/transitcore/internal/timetabletest"
)

func TestSnapshotS1ArrivesAt25ViaOneRide(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := raptor.NewSnapshot(tt)

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
	eng := raptor.NewSnapshot(tt)

	_, ok := eng.EarliestArrival(0, 5, 21)
	require.False(t, ok)
}

func TestSnapshotS3StartMidChain(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := raptor.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(2, 5, 10)
	require.True(t, ok)
	require.EqualValues(t, 25, j.Arrival(0))
}

func TestSnapshotS4ShortcutTripWins(t *testing.T) {
	tt := timetabletest.ChainWithShortcut(t)
	eng := raptor.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(0, 5, 0)
	require.True(t, ok)
	require.EqualValues(t, 20, j.Arrival(0))
}

func TestSnapshotS5TrailingWalk(t *testing.T) {
	tt := timetabletest.ChainWithFootpath(t)
	eng := raptor.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(0, 6, 0)
	require.True(t, ok)
	require.EqualValues(t, 28, j.Arrival(0))
	last := j.Parts[len(j.Parts)-1]
	walk, isWalk := last.(journey.Walk)
	require.True(t, isWalk)
	require.EqualValues(t, 5, walk.From)
	require.EqualValues(t, 6, walk.To)
}

func TestSnapshotS6MissingConnectionIsAbsent(t *testing.T) {
	tt := timetabletest.ChainMinusLastConnection(t)
	eng := raptor.NewSnapshot(tt)

	_, ok := eng.EarliestArrival(0, 5, 0)
	require.False(t, ok)
}

func TestLiveS6DeleteConnectionMakesDestinationUnreachable(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := raptor.NewLive(tt)

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

func TestLiveIdempotentNoOpUpdateRestoresResult(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := raptor.NewLive(tt)
	conn := timetabletest.LastConnection()

	before, ok := eng.EarliestArrival(0, 5, 0)
	require.True(t, ok)

	oldTrip := tt.Trips[0]
	shortTrip := &timetable.Trip{ID: 0, Connections: oldTrip.Connections[:4]}

	require.NoError(t, eng.ApplyUpdate(timetable.DeleteConnection{OldTrip: oldTrip, NewTrip: shortTrip, Conn: conn}))
	_, ok = eng.EarliestArrival(0, 5, 0)
	require.False(t, ok)

	require.NoError(t, eng.ApplyUpdate(timetable.AddConnection{OldTrip: shortTrip, NewTrip: oldTrip, Conn: conn}))
	after, ok := eng.EarliestArrival(0, 5, 0)
	require.True(t, ok)
	require.Equal(t, before.Arrival(0), after.Arrival(0))
}

func TestSnapshotOriginEqualsDestination(t *testing.T) {
	tt := timetabletest.Chain(t)
	eng := raptor.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(2, 2, 10)
	require.True(t, ok)
	require.Empty(t, j.Parts)
}

// TestSnapshotUsesAtMostFourRides checks spec §8's bound that a journey
// found within the default round cap uses no more than defaultMaxRounds-1
// distinct rides. The shortcut fixture is reachable in a single ride, so
// it is a cheap, deterministic stand-in for a tighter K-bound check.
func TestSnapshotUsesAtMostFourRides(t *testing.T) {
	tt := timetabletest.ChainWithShortcut(t)
	eng := raptor.NewSnapshot(tt)

	j, ok := eng.EarliestArrival(0, 5, 0)
	require.True(t, ok)

	rides := 0
	for _, p := range j.Parts {
		if _, isRide := p.(journey.Ride); isRide {
			rides++
		}
	}
	require.LessOrEqual(t, rides, 4)
}
