package timetable

import "fmt"

// Trip is an ordered, chained sequence of connections belonging to one
// vehicle run. Connections are chained: each connection's arrival stop is
// the next one's departure stop, and arrivals never run later than the
// next departure. Every connection shares the trip's identifier.
type Trip struct {
	ID          TripID
	Connections []Connection
}

// Validate checks the chaining invariant from spec §3. It is the one place
// a malformed trip (built by a buggy supplier) is caught before it poisons
// an engine index.
func (t *Trip) Validate() error {
	if len(t.Connections) == 0 {
		return precondition("Trip.Validate", "trip %d has no connections", t.ID)
	}
	for i, c := range t.Connections {
		if c.TripID != t.ID {
			return precondition("Trip.Validate", "trip %d connection %d carries trip id %d", t.ID, i, c.TripID)
		}
		if !c.Valid() {
			return precondition("Trip.Validate", "trip %d connection %d departs after it arrives", t.ID, i)
		}
		if i > 0 {
			prev := t.Connections[i-1]
			if prev.ArrStop != c.DepStop {
				return precondition("Trip.Validate", "trip %d connection %d does not chain from the previous arrival stop", t.ID, i)
			}
			if prev.ArrTime > c.DepTime {
				return precondition("Trip.Validate", "trip %d connection %d departs before the previous connection arrives", t.ID, i)
			}
		}
	}
	return nil
}

// StopSequence returns the ordered list of stops visited by the trip,
// including both endpoints: len(result) == len(Connections)+1. This is the
// key RAPTOR uses to group trips into routes (spec §4.3, §9).
func (t *Trip) StopSequence() []StopID {
	seq := make([]StopID, 0, len(t.Connections)+1)
	seq = append(seq, t.Connections[0].DepStop)
	for _, c := range t.Connections {
		seq = append(seq, c.ArrStop)
	}
	return seq
}

// DepartureTime is the departure time of the trip's first connection. No
// ordering over trips is defined here; RAPTOR sorts a route's trips by their
// first connection's departure time alone, with no tie-break on identifier.
func (t *Trip) DepartureTime() Time {
	return t.Connections[0].DepTime
}

func (t *Trip) String() string {
	return fmt.Sprintf("Trip(%d, %d legs)", t.ID, len(t.Connections))
}
