package raptor

import (
	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

// Snapshot is the built-once RAPTOR index.
type Snapshot struct {
	ix *index
}

var _ engine.Engine = (*Snapshot)(nil)

// NewSnapshot builds a RAPTOR snapshot engine from a timetable.
func NewSnapshot(tt *timetable.Timetable) *Snapshot {
	return &Snapshot{ix: build(tt)}
}

func (s *Snapshot) Name() string { return "RAPTOR (snapshot)" }

func (s *Snapshot) EarliestArrival(src, dst timetable.StopID, depart timetable.Time) (journey.Journey, bool) {
	return compute(s.ix, src, dst, depart, defaultMaxRounds)
}
