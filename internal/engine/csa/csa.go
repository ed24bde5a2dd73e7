// Package csa implements the Connection Scan Algorithm: one linear sweep
// over time-ordered connections. Grounded on
// original_source/src/algorithms/csa_vec.rs and csa_btree.rs, itself
// derived from https://github.com/trainline-eu/csa-challenge/blob/master/csa.rs.
package csa

import (
	"math"
	"sort"

	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

const infinity = timetable.Time(math.MaxInt64 / 2)

// hop records how the current-best arrival at a stop was constructed,
// mirroring the (boarding_connection, alighting_connection, last_walk)
// triple from spec §4.1.
type hop struct {
	hasRide  bool
	boarding timetable.Connection
	alight   timetable.Connection
	walkFrom timetable.StopID
	walkTo   timetable.StopID
	walkDur  timetable.Time
	walkAt   timetable.Time
}

func selfLoopDuration(footpaths map[timetable.StopID][]timetable.Footpath, stop timetable.StopID) timetable.Time {
	for _, fp := range footpaths[stop] {
		if fp.From == stop && fp.To == stop {
			return fp.Duration
		}
	}
	return 0
}

// sweep performs the CSA scan described in spec §4.1 over conns, which must
// already be sorted by the canonical Connection order. It returns the best
// journey found and whether one was found at all.
func sweep(conns []timetable.Connection, footpaths map[timetable.StopID][]timetable.Footpath, idx *timetable.StopIndex, src, dst timetable.StopID, t0 timetable.Time) (journey.Journey, bool) {
	if src == dst {
		if d := selfLoopDuration(footpaths, src); d > 0 {
			return journey.Journey{Parts: []journey.Part{journey.Walk{From: src, To: src, Duration: d, At: t0}}}, true
		}
		return journey.Journey{}, true
	}

	if _, ok := idx.Dense(src); !ok {
		return journey.Journey{}, false
	}
	dstDense, ok := idx.Dense(dst)
	if !ok {
		return journey.Journey{}, false
	}

	n := idx.Len()
	earliest := make([]timetable.Time, n)
	for i := range earliest {
		earliest[i] = infinity
	}
	jt := make([]*hop, n)
	firstBoard := make(map[timetable.TripID]timetable.Connection)

	for _, fp := range footpaths[src] {
		di, ok := idx.Dense(fp.To)
		if !ok {
			continue
		}
		arrive := t0 + fp.Duration
		if arrive < earliest[di] {
			earliest[di] = arrive
			if fp.To != src {
				jt[di] = &hop{walkFrom: src, walkTo: fp.To, walkDur: fp.Duration, walkAt: t0}
			}
		}
	}
	start := sort.Search(len(conns), func(i int) bool { return conns[i].DepTime >= t0 })

	for _, conn := range conns[start:] {
		if earliest[dstDense] <= conn.DepTime {
			break // spec §4.1 step 1: the sorted order is the stopping oracle.
		}

		depDense, ok := idx.Dense(conn.DepStop)
		if !ok {
			continue
		}

		boarding, boarded := firstBoard[conn.TripID]
		usable := boarded || earliest[depDense] <= conn.DepTime
		if !usable {
			continue
		}
		if !boarded {
			firstBoard[conn.TripID] = conn
			boarding = conn
		}

		for _, fp := range footpaths[conn.ArrStop] {
			ti, ok := idx.Dense(fp.To)
			if !ok {
				continue
			}
			arrive := conn.ArrTime + fp.Duration
			if arrive < earliest[ti] {
				earliest[ti] = arrive
				jt[ti] = &hop{
					hasRide:  true,
					boarding: boarding,
					alight:   conn,
					walkFrom: conn.ArrStop,
					walkTo:   fp.To,
					walkDur:  fp.Duration,
					walkAt:   conn.ArrTime,
				}
			}
		}
	}

	return reconstruct(jt, idx, src, dst)
}

func reconstruct(jt []*hop, idx *timetable.StopIndex, src, dst timetable.StopID) (journey.Journey, bool) {
	dstDense, _ := idx.Dense(dst)
	if jt[dstDense] == nil {
		return journey.Journey{}, false
	}

	var parts []journey.Part
	cur := dst
	for {
		curDense, ok := idx.Dense(cur)
		if !ok {
			break
		}
		h := jt[curDense]
		if h == nil {
			break
		}
		if !(h.walkFrom == h.walkTo && h.walkDur == 0) {
			parts = append(parts, journey.Walk{From: h.walkFrom, To: h.walkTo, Duration: h.walkDur, At: h.walkAt})
		}
		if h.hasRide {
			parts = append(parts, journey.Ride{First: h.boarding, Last: h.alight})
			cur = h.boarding.DepStop
		} else {
			cur = h.walkFrom
		}
		if cur == src {
			break
		}
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return journey.Journey{Parts: parts}, true
}

func stopsOf(tt *timetable.Timetable) *timetable.StopIndex {
	idx := timetable.NewStopIndex()
	for s := range tt.Stops {
		idx.Add(s)
	}
	for s, fps := range tt.Footpaths {
		idx.Add(s)
		for _, fp := range fps {
			idx.Add(fp.To)
		}
	}
	for _, trip := range tt.Trips {
		for _, c := range trip.Connections {
			idx.Add(c.DepStop)
			idx.Add(c.ArrStop)
		}
	}
	return idx
}
