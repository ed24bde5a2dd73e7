// Package td implements time-dependent Dijkstra over per-stop outgoing
// connection lists, binary-searching each neighbour's sorted connections
// for the earliest one catchable from the current arrival time. Grounded
// on original_source/src/algorithms/td.rs, itself derived from the
// Dijkstra example in the Rust standard library's BinaryHeap docs (the
// Rust source flips Ord to fake a min-heap out of BinaryHeap's max-heap;
// Go's container/heap is a min-heap natively, so no such flip is needed).
package td

import (
	"container/heap"
	"math"
	"sort"

	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

const infinity = timetable.Time(math.MaxInt64 / 2)

// edge records the single hop used to reach a stop with the best known
// arrival time: either a ride on one connection or a footpath walk.
type edge struct {
	isWalk   bool
	conn     timetable.Connection
	walkFrom timetable.StopID
	walkTo   timetable.StopID
	walkAt   timetable.Time
	walkDur  timetable.Time
}

// index is the per-stop adjacency used by compute: for each departure stop,
// the outgoing connections grouped by arrival stop and sorted by departure
// time, so the earliest catchable connection to a given neighbour can be
// found with one binary search (mirrors td.rs's Station.neighbours).
type index struct {
	byDepStop map[timetable.StopID]map[timetable.StopID][]timetable.Connection
	footpaths map[timetable.StopID][]timetable.Footpath
	idx       *timetable.StopIndex
}

func build(tt *timetable.Timetable) *index {
	ix := &index{
		byDepStop: make(map[timetable.StopID]map[timetable.StopID][]timetable.Connection),
		footpaths: tt.Footpaths,
		idx:       timetable.NewStopIndex(),
	}
	for s := range tt.Stops {
		ix.idx.Add(s)
	}
	for s, fps := range tt.Footpaths {
		ix.idx.Add(s)
		for _, fp := range fps {
			ix.idx.Add(fp.To)
		}
	}
	for _, trip := range tt.Trips {
		for _, c := range trip.Connections {
			ix.addConnection(c)
		}
	}
	ix.sortAll()
	return ix
}

func (ix *index) addConnection(c timetable.Connection) {
	ix.idx.Add(c.DepStop)
	ix.idx.Add(c.ArrStop)
	byArr, ok := ix.byDepStop[c.DepStop]
	if !ok {
		byArr = make(map[timetable.StopID][]timetable.Connection)
		ix.byDepStop[c.DepStop] = byArr
	}
	byArr[c.ArrStop] = append(byArr[c.ArrStop], c)
}

func (ix *index) removeConnection(c timetable.Connection) {
	byArr, ok := ix.byDepStop[c.DepStop]
	if !ok {
		return
	}
	conns := byArr[c.ArrStop]
	for i, existing := range conns {
		if existing.Equal(c) {
			byArr[c.ArrStop] = append(conns[:i], conns[i+1:]...)
			return
		}
	}
}

func (ix *index) sortAll() {
	for _, byArr := range ix.byDepStop {
		for arr, conns := range byArr {
			sort.Slice(conns, func(i, j int) bool { return conns[i].Less(conns[j]) })
			byArr[arr] = conns
		}
	}
}

func (ix *index) sortNeighbour(dep, arr timetable.StopID) {
	conns := ix.byDepStop[dep][arr]
	sort.Slice(conns, func(i, j int) bool { return conns[i].Less(conns[j]) })
}

// earliestFrom finds the first connection to arr departing no earlier than
// cost, mirroring td.rs's bin_search_arr.
func earliestFrom(conns []timetable.Connection, cost timetable.Time) (timetable.Connection, bool) {
	i := sort.Search(len(conns), func(i int) bool { return conns[i].DepTime >= cost })
	if i == len(conns) {
		return timetable.Connection{}, false
	}
	return conns[i], true
}

type heapItem struct {
	cost timetable.Time
	stop timetable.StopID
}

type minHeap []heapItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// compute runs time-dependent Dijkstra from src, stopping as soon as dst is
// popped off the heap (spec §4.2).
func compute(ix *index, src, dst timetable.StopID, t0 timetable.Time) (journey.Journey, bool) {
	if src == dst {
		return journey.Journey{}, true
	}
	if _, ok := ix.idx.Dense(src); !ok {
		return journey.Journey{}, false
	}
	if _, ok := ix.idx.Dense(dst); !ok {
		return journey.Journey{}, false
	}

	n := ix.idx.Len()
	dist := make([]timetable.Time, n)
	for i := range dist {
		dist[i] = infinity
	}
	prev := make([]*edge, n)

	srcDense, _ := ix.idx.Dense(src)
	dist[srcDense] = t0

	h := &minHeap{{cost: t0, stop: src}}
	heap.Init(h)

	for h.Len() > 0 {
		top := heap.Pop(h).(heapItem)
		cost, stop := top.cost, top.stop
		stopDense, _ := ix.idx.Dense(stop)

		if stop == dst {
			return reconstruct(prev, ix.idx, src, dst)
		}
		if cost > dist[stopDense] {
			continue // a better path to stop was already found and processed.
		}

		for arr, conns := range ix.byDepStop[stop] {
			conn, ok := earliestFrom(conns, cost)
			if !ok {
				continue
			}
			arrDense, ok := ix.idx.Dense(arr)
			if !ok {
				continue
			}
			if conn.ArrTime < dist[arrDense] {
				dist[arrDense] = conn.ArrTime
				prev[arrDense] = &edge{conn: conn}
				heap.Push(h, heapItem{cost: conn.ArrTime, stop: arr})
			}
		}

		for _, fp := range ix.footpaths[stop] {
			if fp.From == fp.To {
				continue
			}
			toDense, ok := ix.idx.Dense(fp.To)
			if !ok {
				continue
			}
			arrive := cost + fp.Duration
			if arrive < dist[toDense] {
				dist[toDense] = arrive
				prev[toDense] = &edge{isWalk: true, walkFrom: stop, walkTo: fp.To, walkAt: cost, walkDur: fp.Duration}
				heap.Push(h, heapItem{cost: arrive, stop: fp.To})
			}
		}
	}

	return journey.Journey{}, false
}

// reconstruct walks prev backward from dst to src, then coalesces
// consecutive single-connection rides sharing a trip into one Ride part —
// the "post-hoc ride-coalescing" spec §4.2 calls for, since each relaxed
// edge here is exactly one connection rather than a whole trip leg.
func reconstruct(prev []*edge, idx *timetable.StopIndex, src, dst timetable.StopID) (journey.Journey, bool) {
	dstDense, _ := idx.Dense(dst)
	if prev[dstDense] == nil {
		return journey.Journey{}, false
	}

	var edges []*edge
	cur := dst
	for cur != src {
		curDense, ok := idx.Dense(cur)
		if !ok {
			break
		}
		e := prev[curDense]
		if e == nil {
			break
		}
		edges = append(edges, e)
		if e.isWalk {
			cur = e.walkFrom
		} else {
			cur = e.conn.DepStop
		}
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	var parts []journey.Part
	for _, e := range edges {
		if e.isWalk {
			w := journey.Walk{From: e.walkFrom, To: e.walkTo, Duration: e.walkDur, At: e.walkAt}
			if !w.Trivial() {
				parts = append(parts, w)
			}
			continue
		}
		if last, ok := lastRide(parts); ok && last.Last.TripID == e.conn.TripID && last.Last.ArrStop == e.conn.DepStop {
			setLastRide(parts, e.conn)
			continue
		}
		parts = append(parts, journey.Ride{First: e.conn, Last: e.conn})
	}

	return journey.Journey{Parts: parts}, true
}

func lastRide(parts []journey.Part) (journey.Ride, bool) {
	if len(parts) == 0 {
		return journey.Ride{}, false
	}
	r, ok := parts[len(parts)-1].(journey.Ride)
	return r, ok
}

func setLastRide(parts []journey.Part, conn timetable.Connection) {
	r := parts[len(parts)-1].(journey.Ride)
	r.Last = conn
	parts[len(parts)-1] = r
}

