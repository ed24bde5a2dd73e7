// Package timetabletest builds the seed scenarios from spec §8 (S1-S6): a
// linear 5-connection chain over stops 0..5, trip_id 0, zero-duration
// self-loop footpaths, used identically across the CSA, TD and RAPTOR
// conformance test suites so all three algorithms are checked against the
// same fixtures. Grounded on tidbyt-gtfs/testutil/testutil.go's shared
// test-fixture-builder pattern.
package timetabletest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antigravity/transitcore/internal/timetable"
)

// Chain builds the S1-S3 fixture: one trip, five chained connections from
// stop 0 to stop 5.
func Chain(t testing.TB) *timetable.Timetable {
	b := timetable.NewBuilder(0)
	conns := []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 1, ArrTime: 4},
		{DepStop: 1, ArrStop: 2, DepTime: 5, ArrTime: 9},
		{DepStop: 2, ArrStop: 3, DepTime: 10, ArrTime: 14},
		{DepStop: 3, ArrStop: 4, DepTime: 15, ArrTime: 19},
		{DepStop: 4, ArrStop: 5, DepTime: 20, ArrTime: 25},
	}
	for i := range conns {
		conns[i].TripID = 0
	}
	require.NoError(t, b.AddTrip(&timetable.Trip{ID: 0, Connections: conns}))
	tt, err := b.Build()
	require.NoError(t, err)
	return tt
}

// ChainMinusLastConnection builds S6's static baseline: the chain with its
// last connection (4,5,20,25) removed, verifying the same result a live
// engine should reach after applying DeleteConnection.
func ChainMinusLastConnection(t testing.TB) *timetable.Timetable {
	b := timetable.NewBuilder(0)
	conns := []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 1, ArrTime: 4, TripID: 0},
		{DepStop: 1, ArrStop: 2, DepTime: 5, ArrTime: 9, TripID: 0},
		{DepStop: 2, ArrStop: 3, DepTime: 10, ArrTime: 14, TripID: 0},
		{DepStop: 3, ArrStop: 4, DepTime: 15, ArrTime: 19, TripID: 0},
	}
	require.NoError(t, b.AddTrip(&timetable.Trip{ID: 0, Connections: conns}))
	tt, err := b.Build()
	require.NoError(t, err)
	return tt
}

// LastConnection is the connection S6 deletes from the Chain fixture.
func LastConnection() timetable.Connection {
	return timetable.Connection{DepStop: 4, ArrStop: 5, DepTime: 20, ArrTime: 25, TripID: 0}
}

// ChainWithShortcut builds S4: the Chain fixture plus a second trip that
// reaches stop 5 earlier via a shortcut through stop 2.
func ChainWithShortcut(t testing.TB) *timetable.Timetable {
	b := timetable.NewBuilder(0)
	chainConns := []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 1, ArrTime: 4, TripID: 0},
		{DepStop: 1, ArrStop: 2, DepTime: 5, ArrTime: 9, TripID: 0},
		{DepStop: 2, ArrStop: 3, DepTime: 10, ArrTime: 14, TripID: 0},
		{DepStop: 3, ArrStop: 4, DepTime: 15, ArrTime: 19, TripID: 0},
		{DepStop: 4, ArrStop: 5, DepTime: 20, ArrTime: 25, TripID: 0},
	}
	require.NoError(t, b.AddTrip(&timetable.Trip{ID: 0, Connections: chainConns}))

	shortcutConns := []timetable.Connection{
		{DepStop: 0, ArrStop: 2, DepTime: 2, ArrTime: 6, TripID: 1},
		{DepStop: 2, ArrStop: 5, DepTime: 7, ArrTime: 20, TripID: 1},
	}
	require.NoError(t, b.AddTrip(&timetable.Trip{ID: 1, Connections: shortcutConns}))

	tt, err := b.Build()
	require.NoError(t, err)
	return tt
}

// ChainWithFootpath builds S5: the Chain fixture plus a footpath from stop
// 5 to a new stop 6, duration 3.
func ChainWithFootpath(t testing.TB) *timetable.Timetable {
	tt := Chain(t)
	b := timetable.NewBuilder(0)
	for _, trip := range tt.Trips {
		require.NoError(t, b.AddTrip(trip))
	}
	b.AddFootpath(timetable.Footpath{From: 5, To: 6, Duration: 3})
	out, err := b.Build()
	require.NoError(t, err)
	return out
}
