// Package raptor implements the Round-Based Public Transit Routing
// algorithm: trips sharing a stop sequence are grouped into a Route, and
// each round scans every marked route once, catching the earliest trip
// still reachable from the round's boarding stop. Grounded on
// original_source/src/algorithms/raptor.rs and raptor_btree.rs, themselves
// implementing the appendix algorithm from Delling et al.'s "Round-Based
// Public Transit Routing" paper.
package raptor

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

const infinity = timetable.Time(math.MaxInt64 / 2)

// defaultMaxRounds bounds the number of RAPTOR rounds (spec §4.3's
// K-bounded rounds), counting round 0 at the origin, so a search boards at
// most defaultMaxRounds-1 vehicles. The original's MAX_K=5 is kept as the
// default.
const defaultMaxRounds = 5

// Route is an equivalence class of trips that all visit the same ordered
// sequence of stops.
type Route struct {
	Stops []timetable.StopID
	// Trips is sorted ascending by Trips[i].Connections[0].DepTime. Trips on
	// a route never overtake one another, so this order holds at every stop
	// along the route, which is what makes tripFrom's binary search valid.
	Trips []*timetable.Trip
}

func (r *Route) indexOf(stop timetable.StopID) (int, bool) {
	for i, s := range r.Stops {
		if s == stop {
			return i, true
		}
	}
	return 0, false
}

// before reports whether p1 occurs no later than p2 along the route. It
// panics if either stop is not on the route.
func (r *Route) before(p1, p2 timetable.StopID) bool {
	i1, ok1 := r.indexOf(p1)
	i2, ok2 := r.indexOf(p2)
	if !ok1 || !ok2 {
		panic("raptor: stops not found in route")
	}
	return i1 <= i2
}

func (r *Route) numHops() int { return len(r.Stops) - 1 }

// tripFrom finds the first trip on the route whose connection leaving
// stopIdx departs no earlier than startTime. Spec §9 resolves the
// original's inconsistency between raptor.rs (">=") and raptor_btree.rs
// (">") in favor of ">=" for both variants.
func (r *Route) tripFrom(stopIdx int, startTime timetable.Time) (*timetable.Trip, bool) {
	i := sort.Search(len(r.Trips), func(i int) bool { return r.Trips[i].Connections[stopIdx].DepTime >= startTime })
	if i == len(r.Trips) {
		return nil, false
	}
	return r.Trips[i], true
}

func (r *Route) insertTrip(t *timetable.Trip) {
	i := sort.Search(len(r.Trips), func(i int) bool {
		return !(r.Trips[i].Connections[0].DepTime < t.Connections[0].DepTime)
	})
	r.Trips = append(r.Trips, nil)
	copy(r.Trips[i+1:], r.Trips[i:])
	r.Trips[i] = t
}

func (r *Route) removeTrip(id timetable.TripID) {
	for i, t := range r.Trips {
		if t.ID == id {
			r.Trips = append(r.Trips[:i], r.Trips[i+1:]...)
			return
		}
	}
}

// index is the full RAPTOR data structure: the route set, the reverse
// stop->routes lookup, minimum-transfer footpaths, and a route-by-stop-key
// lookup used only by the live variant to find a trip's route on update.
type index struct {
	routes      []*Route
	stopsRoutes map[timetable.StopID]map[int]struct{}
	footpaths   map[timetable.StopID]map[timetable.StopID]timetable.Time
	routeByKey  map[string]int
	idx         *timetable.StopIndex
}

func routeStops(trip *timetable.Trip) []timetable.StopID {
	stops := make([]timetable.StopID, 0, len(trip.Connections)+1)
	for _, c := range trip.Connections {
		stops = append(stops, c.DepStop)
	}
	stops = append(stops, trip.Connections[len(trip.Connections)-1].ArrStop)
	return stops
}

func routeKey(stops []timetable.StopID) string {
	var b strings.Builder
	for _, s := range stops {
		b.WriteString(strconv.FormatUint(s, 10))
		b.WriteByte(',')
	}
	return b.String()
}

func footpathMap(fps map[timetable.StopID][]timetable.Footpath) map[timetable.StopID]map[timetable.StopID]timetable.Time {
	out := make(map[timetable.StopID]map[timetable.StopID]timetable.Time, len(fps))
	for from, list := range fps {
		m := make(map[timetable.StopID]timetable.Time, len(list))
		for _, fp := range list {
			m[fp.To] = fp.Duration
		}
		out[from] = m
	}
	return out
}

func (ix *index) addStopRoute(stop timetable.StopID, routeIdx int) {
	m, ok := ix.stopsRoutes[stop]
	if !ok {
		m = make(map[int]struct{})
		ix.stopsRoutes[stop] = m
	}
	m[routeIdx] = struct{}{}
}

func build(tt *timetable.Timetable) *index {
	ix := &index{
		stopsRoutes: make(map[timetable.StopID]map[int]struct{}),
		footpaths:   footpathMap(tt.Footpaths),
		routeByKey:  make(map[string]int),
		idx:         timetable.NewStopIndex(),
	}

	order := make([]string, 0)
	grouped := make(map[string]*Route)
	for _, trip := range tt.Trips {
		stops := routeStops(trip)
		key := routeKey(stops)
		route, ok := grouped[key]
		if !ok {
			route = &Route{Stops: stops}
			grouped[key] = route
			order = append(order, key)
		}
		route.Trips = append(route.Trips, trip)
	}

	for _, key := range order {
		route := grouped[key]
		sort.Slice(route.Trips, func(i, j int) bool {
			return route.Trips[i].Connections[0].DepTime < route.Trips[j].Connections[0].DepTime
		})
		routeIdx := len(ix.routes)
		ix.routes = append(ix.routes, route)
		ix.routeByKey[key] = routeIdx
		for _, s := range route.Stops {
			ix.idx.Add(s)
			ix.addStopRoute(s, routeIdx)
		}
	}

	for s, fps := range tt.Footpaths {
		ix.idx.Add(s)
		for _, fp := range fps {
			ix.idx.Add(fp.To)
		}
	}

	return ix
}

// interchange is the (from, to, duration) triple used to record the
// minimum-transfer or footpath buffer taken before boarding a trip.
type interchange struct {
	from, to timetable.StopID
	dur      timetable.Time
}

// legHop is how the best-known arrival at a stop was produced: either a
// ride from board to alight (preceded by the interchange that let the
// traveller board it), or a pure footpath walk with no ride at all — the
// latter is what reconstruct needs to reach a destination that sits past
// the end of a route, reachable only by walking (spec §8 scenario S5).
type legHop struct {
	isWalk bool

	board, alight timetable.Connection
	xfer          interchange

	walkFrom, walkTo timetable.StopID
	walkAt, walkDur  timetable.Time
}

func minTime(a, b timetable.Time) timetable.Time {
	if a < b {
		return a
	}
	return b
}

// compute runs the RAPTOR round-based search from src, bounded to
// maxRounds rounds (<=0 selects defaultMaxRounds).
func compute(ix *index, src, dst timetable.StopID, t0 timetable.Time, maxRounds int) (journey.Journey, bool) {
	if src == dst {
		return journey.Journey{}, true
	}
	if _, ok := ix.idx.Dense(src); !ok {
		return journey.Journey{}, false
	}
	dstDense, ok := ix.idx.Dense(dst)
	if !ok {
		return journey.Journey{}, false
	}
	if maxRounds <= 0 {
		maxRounds = defaultMaxRounds
	}

	n := ix.idx.Len()
	earliestK := make([][]timetable.Time, n)
	for i := range earliestK {
		earliestK[i] = make([]timetable.Time, maxRounds)
		for k := range earliestK[i] {
			earliestK[i][k] = infinity
		}
	}
	earliest := make([]timetable.Time, n)
	for i := range earliest {
		earliest[i] = infinity
	}

	srcDense, _ := ix.idx.Dense(src)
	earliestK[srcDense][0] = t0
	earliest[srcDense] = t0

	interchangeAt := make([]*interchange, n)
	prev := make([]*legHop, n)

	marked := map[timetable.StopID]struct{}{src: {}}

	for k := 1; k < maxRounds; k++ {
		q := make(map[int]timetable.StopID)
		for p := range marked {
			for r := range ix.stopsRoutes[p] {
				if p2, seen := q[r]; seen {
					if !ix.routes[r].before(p, p2) {
						continue
					}
				}
				q[r] = p
			}
		}

		marked = make(map[timetable.StopID]struct{})

		for r, p := range q {
			route := ix.routes[r]
			startIdx, ok := route.indexOf(p)
			if !ok || len(route.Trips) == 0 {
				continue
			}

			var t *timetable.Trip
			tFrom := 0

			for i := startIdx; i < len(route.Stops); i++ {
				pi := route.Stops[i]
				piDense, ok := ix.idx.Dense(pi)
				if !ok {
					continue
				}

				if t != nil {
					alight := t.Connections[i-1]
					if alight.ArrTime < minTime(earliest[dstDense], earliest[piDense]) {
						earliestK[piDense][k] = alight.ArrTime
						earliest[piDense] = alight.ArrTime
						board := t.Connections[tFrom]
						boardDense, _ := ix.idx.Dense(board.DepStop)
						xfer := interchangeAt[boardDense]
						if xfer != nil {
							prev[piDense] = &legHop{board: board, alight: alight, xfer: *xfer}
						} else {
							prev[piDense] = &legHop{board: board, alight: alight}
						}
						marked[pi] = struct{}{}
					}
				}

				if i < route.numHops() {
					xferDur := ix.footpaths[pi][pi]
					boardTime := earliestK[piDense][k-1] + xferDur
					if t == nil || boardTime < t.Connections[i].DepTime {
						if newT, found := route.tripFrom(i, boardTime); found {
							t = newT
						} else {
							t = nil
						}
						interchangeAt[piDense] = &interchange{from: pi, to: pi, dur: xferDur}
						tFrom = i
					}
				}
			}
		}

		justMarked := make([]timetable.StopID, 0, len(marked))
		for p := range marked {
			justMarked = append(justMarked, p)
		}
		for _, p := range justMarked {
			pDense, _ := ix.idx.Dense(p)
			for p2, dur := range ix.footpaths[p] {
				p2Dense, ok := ix.idx.Dense(p2)
				if !ok {
					continue
				}
				if earliestK[pDense][k]+dur < earliestK[p2Dense][k] {
					earliestK[p2Dense][k] = earliestK[pDense][k] + dur
					earliest[p2Dense] = minTime(earliest[p2Dense], earliestK[p2Dense][k])
					interchangeAt[p2Dense] = &interchange{from: p, to: p2, dur: dur}
					prev[p2Dense] = &legHop{isWalk: true, walkFrom: p, walkTo: p2, walkAt: earliestK[pDense][k], walkDur: dur}
				}
				marked[p2] = struct{}{}
			}
		}

		if len(marked) == 0 {
			break
		}
	}

	return reconstruct(ix, prev, src, dst)
}

func reconstruct(ix *index, prev []*legHop, src, dst timetable.StopID) (journey.Journey, bool) {
	var legs []journey.Part
	cur := dst
	for {
		curDense, ok := ix.idx.Dense(cur)
		if !ok {
			break
		}
		h := prev[curDense]
		if h == nil {
			break
		}
		if h.isWalk {
			w := journey.Walk{From: h.walkFrom, To: h.walkTo, Duration: h.walkDur, At: h.walkAt}
			if !w.Trivial() {
				legs = append(legs, w)
			}
			cur = h.walkFrom
			if cur == src {
				break
			}
			continue
		}
		legs = append(legs, journey.Ride{First: h.board, Last: h.alight})
		w := journey.Walk{From: h.xfer.from, To: h.xfer.to, Duration: h.xfer.dur, At: h.board.DepTime - h.xfer.dur}
		if !w.Trivial() {
			legs = append(legs, w)
		}
		cur = h.board.DepStop
		if cur == src {
			break
		}
	}

	if len(legs) == 0 {
		return journey.Journey{}, false
	}

	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}
	if _, isWalk := legs[0].(journey.Walk); isWalk {
		legs = legs[1:]
	}

	return journey.Journey{Parts: legs}, true
}
