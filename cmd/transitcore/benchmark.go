package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antigravity/transitcore/internal/bench"
	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/engine/csa"
	"github.com/antigravity/transitcore/internal/engine/raptor"
	"github.com/antigravity/transitcore/internal/engine/td"
	"github.com/antigravity/transitcore/internal/timetable"
)

var (
	benchDataSet     string
	benchDepart      int64
	benchLive        bool
	benchRoutesOut   string
	benchUpdatesOut  string
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run every registered engine over the full stop x stop query matrix and emit CSV timings",
	RunE:  runBenchmark,
}

func init() {
	benchmarkCmd.Flags().StringVar(&benchDataSet, "data-set", "default", "label recorded in the data_set CSV column")
	benchmarkCmd.Flags().Int64Var(&benchDepart, "depart", 8*3600, "departure time for every query, in seconds since midnight")
	benchmarkCmd.Flags().BoolVar(&benchLive, "live", false, "benchmark the live engines instead of the snapshot engines")
	benchmarkCmd.Flags().StringVar(&benchRoutesOut, "routes-out", "routes.csv", "output path for the per-query timing CSV")
	benchmarkCmd.Flags().StringVar(&benchUpdatesOut, "updates-out", "updates.csv", "output path for the per-update timing CSV (live only)")
}

func registerAlgorithms() {
	bench.Algorithms = []struct {
		Name  string
		Build engine.Builder
	}{
		{Name: "csa", Build: func(tt *timetable.Timetable) engine.Engine { return csa.NewSnapshot(tt) }},
		{Name: "td", Build: func(tt *timetable.Timetable) engine.Engine { return td.NewSnapshot(tt) }},
		{Name: "raptor", Build: func(tt *timetable.Timetable) engine.Engine { return raptor.NewSnapshot(tt) }},
	}
	bench.LiveAlgorithms = []struct {
		Name  string
		Build engine.LiveBuilder
	}{
		{Name: "csa (live)", Build: func(tt *timetable.Timetable) engine.LiveEngine { return csa.NewLive(tt) }},
		{Name: "td (live)", Build: func(tt *timetable.Timetable) engine.LiveEngine { return td.NewLive(tt) }},
		{Name: "raptor (live)", Build: func(tt *timetable.Timetable) engine.LiveEngine { return raptor.NewLive(tt) }},
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	registerAlgorithms()

	tt, err := loadTimetable(context.Background())
	if err != nil {
		return err
	}

	if !benchLive {
		return bench.RunSnapshot(benchDataSet, tt, timetable.Time(benchDepart), benchRoutesOut)
	}
	return bench.RunLive(benchDataSet, tt, timetable.Time(benchDepart), nil, benchRoutesOut, benchUpdatesOut)
}
