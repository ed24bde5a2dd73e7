package td

import (
	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

// Snapshot is the built-once time-dependent Dijkstra index.
type Snapshot struct {
	ix *index
}

var _ engine.Engine = (*Snapshot)(nil)

// NewSnapshot builds a TD snapshot engine from a timetable.
func NewSnapshot(tt *timetable.Timetable) *Snapshot {
	return &Snapshot{ix: build(tt)}
}

func (s *Snapshot) Name() string { return "Time-dependent Dijkstra (snapshot)" }

func (s *Snapshot) EarliestArrival(src, dst timetable.StopID, depart timetable.Time) (journey.Journey, bool) {
	return compute(s.ix, src, dst, depart)
}
