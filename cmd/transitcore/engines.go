package main

import (
	"fmt"

	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/engine/csa"
	"github.com/antigravity/transitcore/internal/engine/raptor"
	"github.com/antigravity/transitcore/internal/engine/td"
	"github.com/antigravity/transitcore/internal/timetable"
)

func buildSnapshotEngine(name string, tt *timetable.Timetable) (engine.Engine, error) {
	switch name {
	case "csa":
		return csa.NewSnapshot(tt), nil
	case "td":
		return td.NewSnapshot(tt), nil
	case "raptor":
		return raptor.NewSnapshot(tt), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want csa, td, or raptor)", name)
	}
}

func buildLiveEngine(name string, tt *timetable.Timetable) (engine.LiveEngine, error) {
	switch name {
	case "csa":
		return csa.NewLive(tt), nil
	case "td":
		return td.NewLive(tt), nil
	case "raptor":
		return raptor.NewLive(tt), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want csa, td, or raptor)", name)
	}
}
