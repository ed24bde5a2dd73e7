// Package engine defines the contract shared by the three routing engines
// (CSA, TD, RAPTOR): a one-shot index builder, a stable name for benchmark
// output, and the earliest-arrival query. Grounded on
// original_source/src/benchable.rs's Benchable/BenchableLive traits.
package engine

import (
	"github.com/antigravity/transitcore/internal/journey"
	"github.com/antigravity/transitcore/internal/timetable"
)

// Engine answers earliest-arrival queries against an index built once from
// a fixed timetable.
type Engine interface {
	// Name is a stable identifier used in benchmark output.
	Name() string
	// EarliestArrival returns the best journey from src to dst departing
	// no earlier than depart, or ok=false if none exists.
	EarliestArrival(src, dst timetable.StopID, depart timetable.Time) (j journey.Journey, ok bool)
}

// LiveEngine additionally accepts mutations between queries. A single
// update followed by many queries must observe it; interleaving updates
// and queries from multiple threads on the same engine is not supported
// (spec §5) — callers must externally serialize.
type LiveEngine interface {
	Engine
	ApplyUpdate(u timetable.TripUpdate) error
}

// Builder constructs an Engine from a timetable. Each algorithm package
// exposes NewSnapshot and NewLive constructors returning its concrete
// types; callers wrap NewSnapshot in a Builder and NewLive in a LiveBuilder.
type Builder func(tt *timetable.Timetable) Engine

// LiveBuilder constructs a LiveEngine from a timetable.
type LiveBuilder func(tt *timetable.Timetable) LiveEngine
