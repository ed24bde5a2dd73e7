package timetable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antigravity/transitcore/internal/timetable"
)

func TestConnectionLessOrdersByDepArrStopIgnoringTrip(t *testing.T) {
	a := timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 10, ArrTime: 20, TripID: 99}
	b := timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 10, ArrTime: 20, TripID: 1}
	require.False(t, a.Less(b))
	require.False(t, b.Less(a))

	c := timetable.Connection{DepStop: 0, ArrStop: 0, DepTime: 11, ArrTime: 20, TripID: 0}
	require.True(t, a.Less(c))
}

func TestConnectionLessTieBreaksOnArrThenDepStopThenArrStop(t *testing.T) {
	base := timetable.Connection{DepTime: 5, ArrTime: 10, DepStop: 3, ArrStop: 4}
	laterArr := base
	laterArr.ArrTime = 11
	require.True(t, base.Less(laterArr))

	laterDepStop := base
	laterDepStop.DepStop = 4
	require.True(t, base.Less(laterDepStop))

	laterArrStop := base
	laterArrStop.ArrStop = 5
	require.True(t, base.Less(laterArrStop))
}

func TestConnectionEqualIsStructuralOverAllFiveFields(t *testing.T) {
	a := timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 10, ArrTime: 20, TripID: 5}
	b := a
	require.True(t, a.Equal(b))
	b.TripID = 6
	require.False(t, a.Equal(b))
}

func TestConnectionValidRejectsArrivalBeforeDeparture(t *testing.T) {
	ok := timetable.Connection{DepTime: 5, ArrTime: 5}
	require.True(t, ok.Valid())
	bad := timetable.Connection{DepTime: 5, ArrTime: 4}
	require.False(t, bad.Valid())
}

func TestTripValidateRejectsEmptyTrip(t *testing.T) {
	trip := &timetable.Trip{ID: 1}
	require.Error(t, trip.Validate())
}

func TestTripValidateRejectsMismatchedTripID(t *testing.T) {
	trip := &timetable.Trip{ID: 1, Connections: []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 0, ArrTime: 1, TripID: 2},
	}}
	require.Error(t, trip.Validate())
}

func TestTripValidateRejectsBrokenChain(t *testing.T) {
	trip := &timetable.Trip{ID: 1, Connections: []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 0, ArrTime: 1, TripID: 1},
		{DepStop: 2, ArrStop: 3, DepTime: 2, ArrTime: 3, TripID: 1},
	}}
	require.Error(t, trip.Validate())
}

func TestTripValidateRejectsDepartureBeforePriorArrival(t *testing.T) {
	trip := &timetable.Trip{ID: 1, Connections: []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 0, ArrTime: 10, TripID: 1},
		{DepStop: 1, ArrStop: 2, DepTime: 5, ArrTime: 11, TripID: 1},
	}}
	require.Error(t, trip.Validate())
}

func TestTripValidateAcceptsWellChainedTrip(t *testing.T) {
	trip := &timetable.Trip{ID: 1, Connections: []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 0, ArrTime: 10, TripID: 1},
		{DepStop: 1, ArrStop: 2, DepTime: 10, ArrTime: 20, TripID: 1},
	}}
	require.NoError(t, trip.Validate())
	require.Equal(t, []timetable.StopID{0, 1, 2}, trip.StopSequence())
	require.EqualValues(t, 0, trip.DepartureTime())
}

func TestBuilderAddTripGeneratesSelfLoopFootpaths(t *testing.T) {
	b := timetable.NewBuilder(0)
	require.NoError(t, b.AddTrip(&timetable.Trip{ID: 0, Connections: []timetable.Connection{
		{DepStop: 1, ArrStop: 2, DepTime: 0, ArrTime: 5, TripID: 0},
	}}))
	tt, err := b.Build()
	require.NoError(t, err)

	for _, stop := range []timetable.StopID{1, 2} {
		found := false
		for _, fp := range tt.Footpaths[stop] {
			if fp.From == stop && fp.To == stop {
				found = true
				require.EqualValues(t, 0, fp.Duration)
			}
		}
		require.True(t, found, "stop %d missing self-loop", stop)
	}
}

func TestBuilderAddTripRejectsInvalidTrip(t *testing.T) {
	b := timetable.NewBuilder(0)
	err := b.AddTrip(&timetable.Trip{ID: 0})
	require.Error(t, err)
}

func TestBuilderAddFootpathOverridesGeneratedSelfLoop(t *testing.T) {
	b := timetable.NewBuilder(12)
	b.AddStop(timetable.NumericStop{StopID: 1})
	b.AddFootpath(timetable.Footpath{From: 1, To: 1, Duration: 0})

	tt, err := b.Build()
	require.NoError(t, err)

	var selfLoops int
	for _, fp := range tt.Footpaths[1] {
		if fp.From == 1 && fp.To == 1 {
			selfLoops++
			require.EqualValues(t, 0, fp.Duration)
		}
	}
	require.Equal(t, 1, selfLoops)
}

func TestTimetableValidateRejectsStopWithoutSelfLoop(t *testing.T) {
	tt := timetable.New()
	tt.Trips[0] = &timetable.Trip{ID: 0, Connections: []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 0, ArrTime: 5, TripID: 0},
	}}
	require.Error(t, tt.Validate())
}

func TestTimetableConnectionsFlattensAllTrips(t *testing.T) {
	b := timetable.NewBuilder(0)
	require.NoError(t, b.AddTrip(&timetable.Trip{ID: 0, Connections: []timetable.Connection{
		{DepStop: 0, ArrStop: 1, DepTime: 0, ArrTime: 5, TripID: 0},
	}}))
	require.NoError(t, b.AddTrip(&timetable.Trip{ID: 1, Connections: []timetable.Connection{
		{DepStop: 1, ArrStop: 2, DepTime: 6, ArrTime: 9, TripID: 1},
	}}))
	tt, err := b.Build()
	require.NoError(t, err)
	require.Len(t, tt.Connections(), 2)
}

func TestDistanceRequiresBothStopsToHaveCoords(t *testing.T) {
	a := timetable.CoordStop{StopID: 1, Lat: 48.8566, Lon: 2.3522}
	b := timetable.NumericStop{StopID: 2}
	_, ok := timetable.Distance(a, b)
	require.False(t, ok)
}

func TestDistanceComputesGreatCircleBetweenCoordStops(t *testing.T) {
	paris := timetable.CoordStop{StopID: 1, Lat: 48.8566, Lon: 2.3522}
	lyon := timetable.CoordStop{StopID: 2, Lat: 45.7640, Lon: 4.8357}
	d, ok := timetable.Distance(paris, lyon)
	require.True(t, ok)
	require.InDelta(t, 392000, d, 15000)
}
