// Package bench runs every registered routing engine against a timetable's
// full stop x stop cross product and records per-query and per-update
// timings as CSV, for comparing algorithms the way the original research
// project did. Grounded on original_source/src/benchmarking.rs, with
// csv.Writer/serde::Serialize replaced by gocarina/gocsv, the CSV library
// the rest of the retrieved pack (tidbyt-gtfs) already depends on.
package bench

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/antigravity/transitcore/internal/engine"
	"github.com/antigravity/transitcore/internal/timetable"
)

// RouteBench is one find-earliest-arrival timing sample, matching spec
// §6's static-query CSV column set exactly: {data_set, algorithm, live,
// distance, time_ns}. Distance is 0 unless both stops expose coordinates.
type RouteBench struct {
	DataSet   string  `csv:"data_set"`
	Algorithm string  `csv:"algorithm"`
	Live      bool    `csv:"live"`
	Distance  float64 `csv:"distance"`
	TimeNs    int64   `csv:"time_ns"`
}

// UpdateBench is one ApplyUpdate timing sample, matching spec §6's update
// CSV column set: {data_set, algorithm, time_ns}.
type UpdateBench struct {
	DataSet   string `csv:"data_set"`
	Algorithm string `csv:"algorithm"`
	TimeNs    int64  `csv:"time_ns"`
}

// Algorithms is the registry of snapshot engine builders to benchmark,
// mirroring original_source/src/algorithms/mod.rs's algorithms() list.
var Algorithms []struct {
	Name  string
	Build engine.Builder
}

// LiveAlgorithms is the registry of live engine builders to benchmark.
var LiveAlgorithms []struct {
	Name  string
	Build engine.LiveBuilder
}

// RunSnapshot benchmarks every registered snapshot engine against every
// (stop1, stop2) pair in the timetable, departing at depart, and writes the
// result to outPath as CSV.
func RunSnapshot(dataSet string, tt *timetable.Timetable, depart timetable.Time, outPath string) error {
	var rows []*RouteBench
	for _, a := range Algorithms {
		eng := a.Build(tt)
		rows = append(rows, timeRoutes(dataSet, eng, tt, depart, false)...)
	}
	return writeCSV(outPath, rows)
}

func timeRoutes(dataSet string, eng engine.Engine, tt *timetable.Timetable, depart timetable.Time, live bool) []*RouteBench {
	var rows []*RouteBench
	for s1, p1 := range tt.Stops {
		for s2, p2 := range tt.Stops {
			before := time.Now()
			eng.EarliestArrival(s1, s2, depart)
			elapsed := time.Since(before)

			dist, _ := timetable.Distance(p1, p2)
			rows = append(rows, &RouteBench{
				DataSet:   dataSet,
				Algorithm: eng.Name(),
				Live:      live,
				Distance:  dist,
				TimeNs:    elapsed.Nanoseconds(),
			})
		}
	}
	return rows
}

// RunLive benchmarks every registered live engine: for each (stop1, stop2)
// query, it also drains a share of updates proportional to the query count,
// so a long update stream is spread evenly across the query loop exactly as
// original_source/src/benchmarking.rs's bench_algorithm_live does.
func RunLive(dataSet string, tt *timetable.Timetable, depart timetable.Time, updates []timetable.TripUpdate, routesOutPath, updatesOutPath string) error {
	var routeRows []*RouteBench
	var updateRows []*UpdateBench

	for _, a := range LiveAlgorithms {
		eng := a.Build(tt)
		rr, ur := timeRoutesAndUpdates(dataSet, eng, tt, depart, updates)
		routeRows = append(routeRows, rr...)
		updateRows = append(updateRows, ur...)
	}

	if err := writeCSV(routesOutPath, routeRows); err != nil {
		return err
	}
	return writeCSV(updatesOutPath, updateRows)
}

func timeRoutesAndUpdates(dataSet string, eng engine.LiveEngine, tt *timetable.Timetable, depart timetable.Time, updates []timetable.TripUpdate) ([]*RouteBench, []*UpdateBench) {
	nStops := len(tt.Stops)
	perIteration := 1
	if nStops > 0 {
		perIteration = len(updates)/(nStops*nStops) + 1
	}

	var routeRows []*RouteBench
	var updateRows []*UpdateBench
	next := 0

	for s1, p1 := range tt.Stops {
		for s2, p2 := range tt.Stops {
			before := time.Now()
			eng.EarliestArrival(s1, s2, depart)
			elapsed := time.Since(before)

			dist, _ := timetable.Distance(p1, p2)
			routeRows = append(routeRows, &RouteBench{
				DataSet:   dataSet,
				Algorithm: eng.Name(),
				Live:      true,
				Distance:  dist,
				TimeNs:    elapsed.Nanoseconds(),
			})

			for i := 0; i < perIteration && next < len(updates); i++ {
				u := updates[next]
				next++
				before := time.Now()
				eng.ApplyUpdate(u)
				elapsed := time.Since(before)
				updateRows = append(updateRows, &UpdateBench{
					DataSet:   dataSet,
					Algorithm: eng.Name(),
					TimeNs:    elapsed.Nanoseconds(),
				})
			}
		}
	}

	return routeRows, updateRows
}

func writeCSV[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
