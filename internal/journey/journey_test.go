package journey_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

func TestWalkTrivialRequiresSameEndpointAndZeroDuration(t *testing.T) {
	require.True(t, journey.Walk{From: 1, To: 1, Duration: 0}.Trivial())
	require.False(t, journey.Walk{From: 1, To: 1, Duration: 5}.Trivial())
	require.False(t, journey.Walk{From: 1, To: 2, Duration: 0}.Trivial())
}

func TestRidePartAccessorsUseFirstAndLastConnection(t *testing.T) {
	r := journey.Ride{
		First: timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 10, ArrTime: 20, TripID: 7},
		Last:  timetable.Connection{DepStop: 2, ArrStop: 3, DepTime: 25, ArrTime: 30, TripID: 7},
	}
	require.EqualValues(t, 1, r.FromStop())
	require.EqualValues(t, 3, r.ToStop())
	require.EqualValues(t, 10, r.DepartTime())
	require.EqualValues(t, 30, r.ArriveTime())
	require.EqualValues(t, 7, r.TripID())
}

func TestJourneyEmptyRepresentsTrivialSelfJourney(t *testing.T) {
	j := journey.Journey{}
	require.True(t, j.Valid())
	_, ok := j.Departure()
	require.False(t, ok)
	require.EqualValues(t, 99, j.Arrival(99))
	require.EqualValues(t, 1, j.Origin(1))
	require.EqualValues(t, 1, j.Destination(1))
}

func TestJourneyValidDetectsBrokenAlternation(t *testing.T) {
	j := journey.Journey{Parts: []journey.Part{
		journey.Ride{
			First: timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 0, ArrTime: 5, TripID: 1},
			Last:  timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 0, ArrTime: 5, TripID: 1},
		},
		journey.Walk{From: 3, To: 4, Duration: 2, At: 5},
	}}
	require.False(t, j.Valid())
}

func TestJourneyValidAcceptsAlternatingRideAndWalk(t *testing.T) {
	ride := journey.Ride{
		First: timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 0, ArrTime: 5, TripID: 1},
		Last:  timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 0, ArrTime: 5, TripID: 1},
	}
	walk := journey.Walk{From: 2, To: 3, Duration: 2, At: 5}
	j := journey.Journey{Parts: []journey.Part{ride, walk}}
	require.True(t, j.Valid())
	dep, ok := j.Departure()
	require.True(t, ok)
	require.EqualValues(t, 0, dep)
	require.EqualValues(t, 7, j.Arrival(0))
	require.EqualValues(t, 1, j.Origin(0))
	require.EqualValues(t, 3, j.Destination(0))
}

func TestJourneyValidRejectsArrivalAfterNextDeparture(t *testing.T) {
	ride := journey.Ride{
		First: timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 0, ArrTime: 10, TripID: 1},
		Last:  timetable.Connection{DepStop: 1, ArrStop: 2, DepTime: 0, ArrTime: 10, TripID: 1},
	}
	walk := journey.Walk{From: 2, To: 3, Duration: 2, At: 5}
	j := journey.Journey{Parts: []journey.Part{ride, walk}}
	require.False(t, j.Valid())
}
