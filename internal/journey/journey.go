// Package journey implements the multi-leg result every routing engine
// returns: an ordered list of ride and walk parts, non-empty except when
// origin and destination are the same stop. Grounded on
// original_source/src/types.rs's TripPart/TripResult, generalized from a
// single "ride on one connection" result into alternating Ride/Walk parts
// per spec §3.
package journey

import "github.com/antigravity/transitcore/internal/timetable"

// Part is either a Ride (a contiguous single-trip ride) or a Walk (a
// footpath). Both implement Part so a Journey can hold a mixed slice.
type Part interface {
	isPart()
	// FromStop and ToStop let reconstruction and validation code check the
	// alternation invariant without a type switch.
	FromStop() timetable.StopID
	ToStop() timetable.StopID
	DepartTime() timetable.Time
	ArriveTime() timetable.Time
}

// Ride is a contiguous ride on a single trip from First.DepStop at
// First.DepTime to Last.ArrStop at Last.ArrTime. First and Last may be the
// same connection (a single-leg ride).
type Ride struct {
	First timetable.Connection
	Last  timetable.Connection
}

func (Ride) isPart() {}
func (r Ride) FromStop() timetable.StopID    { return r.First.DepStop }
func (r Ride) ToStop() timetable.StopID      { return r.Last.ArrStop }
func (r Ride) DepartTime() timetable.Time    { return r.First.DepTime }
func (r Ride) ArriveTime() timetable.Time    { return r.Last.ArrTime }
func (r Ride) TripID() timetable.TripID      { return r.First.TripID }

// Walk is a footpath transfer.
type Walk struct {
	From     timetable.StopID
	To       timetable.StopID
	Duration timetable.Time
	// At is the time the walk starts; ArriveTime is At+Duration.
	At timetable.Time
}

func (Walk) isPart() {}
func (w Walk) FromStop() timetable.StopID { return w.From }
func (w Walk) ToStop() timetable.StopID   { return w.To }
func (w Walk) DepartTime() timetable.Time { return w.At }
func (w Walk) ArriveTime() timetable.Time { return w.At + w.Duration }

// Trivial reports whether a Walk is a no-op: same endpoint, zero duration.
// Spec §9's open question on trailing/leading footpaths is resolved here:
// such a walk is never emitted in a reconstructed Journey.
func (w Walk) Trivial() bool { return w.From == w.To && w.Duration == 0 }

// Journey is the query answer: an ordered list of alternating Ride/Walk
// parts. An empty Journey (zero parts) represents the
// origin-equals-destination case with no interchange delay.
type Journey struct {
	Parts []Part
}

// Departure returns the time the journey leaves its origin. Returns false
// if the journey has no parts (the trivial self-journey case).
func (j Journey) Departure() (timetable.Time, bool) {
	if len(j.Parts) == 0 {
		return 0, false
	}
	return j.Parts[0].DepartTime(), true
}

// Arrival returns the time the journey reaches its destination, or the
// supplied fallback if the journey has no parts.
func (j Journey) Arrival(fallback timetable.Time) timetable.Time {
	if len(j.Parts) == 0 {
		return fallback
	}
	return j.Parts[len(j.Parts)-1].ArriveTime()
}

// Origin returns the journey's departure stop.
func (j Journey) Origin(fallback timetable.StopID) timetable.StopID {
	if len(j.Parts) == 0 {
		return fallback
	}
	return j.Parts[0].FromStop()
}

// Destination returns the journey's arrival stop.
func (j Journey) Destination(fallback timetable.StopID) timetable.StopID {
	if len(j.Parts) == 0 {
		return fallback
	}
	return j.Parts[len(j.Parts)-1].ToStop()
}

// Valid checks the alternation invariant from spec §3: each part's arrival
// stop equals the next part's departure stop, and arrival time never runs
// later than the next departure.
func (j Journey) Valid() bool {
	for i := 1; i < len(j.Parts); i++ {
		prev, cur := j.Parts[i-1], j.Parts[i]
		if prev.ToStop() != cur.FromStop() {
			return false
		}
		if prev.ArriveTime() > cur.DepartTime() {
			return false
		}
	}
	return true
}
