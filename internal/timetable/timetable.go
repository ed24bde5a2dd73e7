package timetable

// Timetable is the immutable bundle {stops, trips, footpaths} handed to an
// algorithm at construction time. Once built, it never changes; live
// engines receive further mutations only as TripUpdates, never by editing
// the Timetable in place.
type Timetable struct {
	Stops     map[StopID]Stop
	Trips     map[TripID]*Trip
	Footpaths map[StopID][]Footpath
}

// New returns an empty timetable ready for population via Builder.
func New() *Timetable {
	return &Timetable{
		Stops:     make(map[StopID]Stop),
		Trips:     make(map[TripID]*Trip),
		Footpaths: make(map[StopID][]Footpath),
	}
}

// Connections returns every connection across every trip in the
// timetable, unsorted. Engines that need a time-ordered sweep sort this
// themselves (spec §4.1: "sorted by the canonical order").
func (t *Timetable) Connections() []Connection {
	n := 0
	for _, trip := range t.Trips {
		n += len(trip.Connections)
	}
	conns := make([]Connection, 0, n)
	for _, trip := range t.Trips {
		conns = append(conns, trip.Connections...)
	}
	return conns
}

// FootpathsFrom returns the outgoing footpaths for a stop, or nil if the
// stop has none on record (a well-formed timetable always has at least the
// self-loop).
func (t *Timetable) FootpathsFrom(stop StopID) []Footpath {
	return t.Footpaths[stop]
}

// Validate checks every trip's chaining invariant and that every stop
// referenced by a connection or footpath carries a self-loop footpath.
func (t *Timetable) Validate() error {
	for _, trip := range t.Trips {
		if err := trip.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[StopID]bool)
	checkSelfLoop := func(stop StopID) error {
		if seen[stop] {
			return nil
		}
		seen[stop] = true
		for _, fp := range t.Footpaths[stop] {
			if fp.From == stop && fp.To == stop {
				return nil
			}
		}
		return precondition("Timetable.Validate", "stop %d has no self-loop footpath", stop)
	}
	for _, trip := range t.Trips {
		for _, c := range trip.Connections {
			if err := checkSelfLoop(c.DepStop); err != nil {
				return err
			}
			if err := checkSelfLoop(c.ArrStop); err != nil {
				return err
			}
		}
	}
	for _, fps := range t.Footpaths {
		for _, fp := range fps {
			if err := checkSelfLoop(fp.From); err != nil {
				return err
			}
			if err := checkSelfLoop(fp.To); err != nil {
				return err
			}
		}
	}
	return nil
}

// Builder assembles a Timetable incrementally. It is the shape every
// in-process supplier (textfile, pg, the in-memory test fixtures) uses
// before handing the result to an engine's Build/New constructor.
type Builder struct {
	tt             *Timetable
	selfLoop       Time
	nextGeneratedID TripID
}

// NewBuilder starts a Builder whose default self-loop footpath duration
// (used by AddStop when no footpath has been registered yet) is
// defaultSelfLoop. The reference rail supplier uses 12 minutes; the
// in-memory/text supplier uses zero (spec §6).
func NewBuilder(defaultSelfLoop Time) *Builder {
	return &Builder{tt: New(), selfLoop: defaultSelfLoop}
}

// AddStop registers stop metadata and ensures a self-loop footpath exists.
func (b *Builder) AddStop(s Stop) {
	b.tt.Stops[s.ID()] = s
	b.ensureSelfLoop(s.ID())
}

func (b *Builder) ensureSelfLoop(stop StopID) {
	for _, fp := range b.tt.Footpaths[stop] {
		if fp.From == stop && fp.To == stop {
			return
		}
	}
	b.tt.Footpaths[stop] = append(b.tt.Footpaths[stop], Footpath{From: stop, To: stop, Duration: b.selfLoop})
}

// AddFootpath registers a (possibly asymmetric) walking transfer, ensuring
// both endpoints still carry their self-loops.
func (b *Builder) AddFootpath(fp Footpath) {
	b.ensureSelfLoop(fp.From)
	b.ensureSelfLoop(fp.To)
	if fp.From == fp.To {
		// Replace the generated self-loop with the caller's explicit one.
		fps := b.tt.Footpaths[fp.From]
		for i, existing := range fps {
			if existing.From == fp.From && existing.To == fp.To {
				fps[i] = fp
				return
			}
		}
	}
	b.tt.Footpaths[fp.From] = append(b.tt.Footpaths[fp.From], fp)
}

// AddTrip registers a trip built from already-chained connections. It also
// registers self-loops for every stop the trip visits, so callers using
// only AddTrip (no explicit AddStop) still get a valid timetable for
// engines that don't need rich stop metadata.
func (b *Builder) AddTrip(trip *Trip) error {
	if err := trip.Validate(); err != nil {
		return err
	}
	b.tt.Trips[trip.ID] = trip
	for _, c := range trip.Connections {
		if _, ok := b.tt.Stops[c.DepStop]; !ok {
			b.tt.Stops[c.DepStop] = NumericStop{StopID: c.DepStop}
		}
		if _, ok := b.tt.Stops[c.ArrStop]; !ok {
			b.tt.Stops[c.ArrStop] = NumericStop{StopID: c.ArrStop}
		}
		b.ensureSelfLoop(c.DepStop)
		b.ensureSelfLoop(c.ArrStop)
	}
	return nil
}

// AddConnectionsAsTrip is a convenience for the common case (the reference
// textfile supplier): wrap a single connection in a singleton trip whose id
// is auto-assigned.
func (b *Builder) AddConnectionsAsTrip(conns ...Connection) error {
	id := b.nextGeneratedID
	b.nextGeneratedID++
	for i := range conns {
		conns[i].TripID = id
	}
	return b.AddTrip(&Trip{ID: id, Connections: conns})
}

// Build finalizes and returns the Timetable. The Builder must not be reused
// afterwards.
func (b *Builder) Build() (*Timetable, error) {
	if err := b.tt.Validate(); err != nil {
		return nil, err
	}
	return b.tt, nil
}
