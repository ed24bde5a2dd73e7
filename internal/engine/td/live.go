package td

import (
	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

// Live is a time-dependent Dijkstra index that accepts TripUpdates between
// queries, updating only the affected stop's neighbour lists rather than
// rebuilding the whole adjacency.
type Live struct {
	ix *index
}

var (
	_ engine.Engine     = (*Live)(nil)
	_ engine.LiveEngine = (*Live)(nil)
)

// NewLive builds a live-updatable TD engine from a timetable.
func NewLive(tt *timetable.Timetable) *Live {
	return &Live{ix: build(tt)}
}

func (l *Live) Name() string { return "Time-dependent Dijkstra (live)" }

func (l *Live) EarliestArrival(src, dst timetable.StopID, depart timetable.Time) (journey.Journey, bool) {
	return compute(l.ix, src, dst, depart)
}

func (l *Live) addConn(c timetable.Connection) {
	l.ix.addConnection(c)
	l.ix.sortNeighbour(c.DepStop, c.ArrStop)
}

func (l *Live) removeConn(c timetable.Connection) {
	l.ix.removeConnection(c)
}

// ApplyUpdate applies a TripUpdate to the per-stop adjacency (spec §4.2
// live variant), mirroring csa.Live.ApplyUpdate's delete+add handling.
func (l *Live) ApplyUpdate(u timetable.TripUpdate) error {
	switch v := u.(type) {
	case timetable.DeleteTrip:
		for _, c := range v.Trip.Connections {
			l.removeConn(c)
		}
	case timetable.AddTrip:
		for _, c := range v.Trip.Connections {
			l.addConn(c)
		}
	case timetable.AddConnection:
		l.addConn(v.Conn)
	case timetable.DeleteConnection:
		l.removeConn(v.Conn)
	default:
		return &timetable.PreconditionError{Op: "td.Live.ApplyUpdate", Msg: "unknown TripUpdate variant"}
	}
	return nil
}
