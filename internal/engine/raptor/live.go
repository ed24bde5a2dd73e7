package raptor

import (
	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

// Live is a RAPTOR index that accepts TripUpdates between queries. Routes
// are looked up by their stop-sequence key (routeByKey), mirroring
// raptor_btree.rs's stops_route reverse index, so a trip mutation never
// has to rescan every route.
type Live struct {
	ix *index
}

var (
	_ engine.Engine     = (*Live)(nil)
	_ engine.LiveEngine = (*Live)(nil)
)

// NewLive builds a live-updatable RAPTOR engine from a timetable.
func NewLive(tt *timetable.Timetable) *Live {
	return &Live{ix: build(tt)}
}

func (l *Live) Name() string { return "RAPTOR (live)" }

func (l *Live) EarliestArrival(src, dst timetable.StopID, depart timetable.Time) (journey.Journey, bool) {
	return compute(l.ix, src, dst, depart, defaultMaxRounds)
}

func (l *Live) deleteTrip(trip *timetable.Trip) {
	key := routeKey(routeStops(trip))
	routeIdx, ok := l.ix.routeByKey[key]
	if !ok {
		return
	}
	l.ix.routes[routeIdx].removeTrip(trip.ID)
}

func (l *Live) addTrip(trip *timetable.Trip) {
	stops := routeStops(trip)
	key := routeKey(stops)
	routeIdx, ok := l.ix.routeByKey[key]
	if !ok {
		routeIdx = len(l.ix.routes)
		route := &Route{Stops: stops}
		l.ix.routes = append(l.ix.routes, route)
		l.ix.routeByKey[key] = routeIdx
		for _, s := range stops {
			l.ix.idx.Add(s)
			l.ix.addStopRoute(s, routeIdx)
		}
	}
	l.ix.routes[routeIdx].insertTrip(trip)
}

// ApplyUpdate applies a TripUpdate by deleting the old trip (if any) and
// inserting the new one, matching raptor_btree.rs's BenchableLive::update.
func (l *Live) ApplyUpdate(u timetable.TripUpdate) error {
	switch v := u.(type) {
	case timetable.DeleteTrip:
		l.deleteTrip(v.Trip)
	case timetable.AddTrip:
		l.addTrip(v.Trip)
	case timetable.AddConnection:
		l.deleteTrip(v.OldTrip)
		l.addTrip(v.NewTrip)
	case timetable.DeleteConnection:
		l.deleteTrip(v.OldTrip)
		l.addTrip(v.NewTrip)
	default:
		return &timetable.PreconditionError{Op: "raptor.Live.ApplyUpdate", Msg: "unknown TripUpdate variant"}
	}
	return nil
}
