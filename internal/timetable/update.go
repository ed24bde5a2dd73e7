package timetable

// TripUpdate is a tagged mutation consumable by any live-capable engine.
// Grounded on original_source/src/types.rs's TripUpdate enum, expressed as
// a Go interface with one concrete type per variant rather than a Rust-style
// enum — spec §9 calls this out as the idiomatic substitute.
//
// old_trip/new_trip always carry the full pre/post state so a subscriber
// can recompute route membership without replaying history; a mutation is
// never observed half-applied.
type TripUpdate interface {
	isTripUpdate()
}

// DeleteTrip removes every connection of Trip.
type DeleteTrip struct {
	Trip *Trip
}

// AddTrip introduces a new trip; all of its connections appear atomically.
type AddTrip struct {
	Trip *Trip
}

// AddConnection replaces OldTrip with NewTrip, which differs by one
// additional connection, Conn.
type AddConnection struct {
	OldTrip *Trip
	NewTrip *Trip
	Conn    Connection
}

// DeleteConnection replaces OldTrip with NewTrip, which differs by the
// removal of Conn.
type DeleteConnection struct {
	OldTrip *Trip
	NewTrip *Trip
	Conn    Connection
}

func (DeleteTrip) isTripUpdate()       {}
func (AddTrip) isTripUpdate()          {}
func (AddConnection) isTripUpdate()    {}
func (DeleteConnection) isTripUpdate() {}
