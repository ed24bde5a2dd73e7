package timetable

// Connection is one scheduled segment of a vehicle journey. Equality and
// hashing are structural over all five fields; ordering deliberately
// excludes TripID so that equal-time connections from different trips stay
// adjacent during a sweep (see Less).
//
// Grounded on original_source/src/types.rs: Connection's Ord impl orders by
// (dep_time, arr_time, dep_stop, arr_stop), trip_id excluded.
type Connection struct {
	DepStop StopID
	ArrStop StopID
	DepTime Time
	ArrTime Time
	TripID  TripID
}

// Less reports whether c sorts before other under the canonical connection
// order: lexicographic on (DepTime, ArrTime, DepStop, ArrStop).
func (c Connection) Less(other Connection) bool {
	if c.DepTime != other.DepTime {
		return c.DepTime < other.DepTime
	}
	if c.ArrTime != other.ArrTime {
		return c.ArrTime < other.ArrTime
	}
	if c.DepStop != other.DepStop {
		return c.DepStop < other.DepStop
	}
	return c.ArrStop < other.ArrStop
}

// Equal reports structural equality over all five fields.
func (c Connection) Equal(other Connection) bool {
	return c.DepStop == other.DepStop && c.ArrStop == other.ArrStop &&
		c.DepTime == other.DepTime && c.ArrTime == other.ArrTime && c.TripID == other.TripID
}

// Valid reports whether the connection satisfies the single invariant
// the data model places on it: it cannot arrive before it departs.
func (c Connection) Valid() bool {
	return c.DepTime <= c.ArrTime
}
