package csa

import (
	"sort"

	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

// Snapshot is the "built once, never updated" CSA index (spec §4.1 (a)):
// a time-ordered slice of connections, sorted by the canonical order.
type Snapshot struct {
	conns     []timetable.Connection
	footpaths map[timetable.StopID][]timetable.Footpath
	idx       *timetable.StopIndex
}

var _ engine.Engine = (*Snapshot)(nil)

// NewSnapshot builds a CSA snapshot engine from a timetable.
func NewSnapshot(tt *timetable.Timetable) *Snapshot {
	conns := tt.Connections()
	sort.Slice(conns, func(i, j int) bool { return conns[i].Less(conns[j]) })
	return &Snapshot{conns: conns, footpaths: tt.Footpaths, idx: stopsOf(tt)}
}

func (s *Snapshot) Name() string { return "CSA (snapshot)" }

func (s *Snapshot) EarliestArrival(src, dst timetable.StopID, depart timetable.Time) (journey.Journey, bool) {
	return sweep(s.conns, s.footpaths, s.idx, src, dst, depart)
}
