// Package pg is the rail-operator-style timetable supplier (spec §6): it
// materialises a multi-day schedule stored in PostGIS into a
// timetable.Timetable with chained connections and a 12-minute default
// self-loop footpath per stop.
//
// Grounded on the teacher's internal/routing/loader.go (the
// RAPTOR-data-loading queries, here retargeted to produce a
// timetable.Timetable instead of a Postgres-specific RaptorData).
package pg

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antigravity/transitcore/internal/timetable"
)

// defaultSelfLoop is the rail operator's minimum interchange time (spec
// §6): 12 minutes, expressed in the same Time unit (seconds) the loaded
// connections use.
const defaultSelfLoop = timetable.Time(12 * 60)

// Loader materialises one day of a rail operator's multi-day schedule into
// a timetable.Timetable. Grounded on the teacher's
// internal/routing/loader.go, retargeted from its own RaptorData/Stop/
// Route/Trip/StopTime types onto the core timetable.Connection/Trip model
// so the result feeds any of the three routing engines, not just the
// teacher's bespoke RAPTOR implementation.
type Loader struct {
	db *pgxpool.Pool
}

// NewLoader wraps a connection pool.
func NewLoader(db *pgxpool.Pool) *Loader {
	return &Loader{db: db}
}

// Load builds a Timetable for the given service day type
// ("weekday"/"saturday"/"sunday"). Each scheduled departure at a pattern's
// first stop becomes one trip whose chained connections advance a fixed 3
// minutes per hop; scheduled times at later stops are not read. Footpaths
// are generated from nearby-stop pairs PostGIS already has indexed.
func (l *Loader) Load(ctx context.Context, dayType string) (*timetable.Timetable, error) {
	log.Println("Loading timetable from database...")
	start := time.Now()

	b := timetable.NewBuilder(defaultSelfLoop)
	var nextTripID timetable.TripID

	rows, err := l.db.Query(ctx, "SELECT id, code, name_fr, ST_X(location::geometry), ST_Y(location::geometry) FROM stops")
	if err != nil {
		return nil, fmt.Errorf("loading stops: %w", err)
	}
	for rows.Next() {
		var dbID int
		var code, name string
		var lon, lat float64
		if err := rows.Scan(&dbID, &code, &name, &lon, &lat); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning stop: %w", err)
		}
		b.AddStop(timetable.CoordStop{StopID: timetable.StopID(dbID), Name: name, Lat: lat, Lon: lon})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading stops: %w", err)
	}

	patternRows, err := l.db.Query(ctx, "SELECT DISTINCT line_id, direction FROM line_stops")
	if err != nil {
		return nil, fmt.Errorf("loading line patterns: %w", err)
	}
	var patterns [][2]int
	for patternRows.Next() {
		var lineID, direction int
		if err := patternRows.Scan(&lineID, &direction); err != nil {
			patternRows.Close()
			return nil, fmt.Errorf("scanning line pattern: %w", err)
		}
		patterns = append(patterns, [2]int{lineID, direction})
	}
	patternRows.Close()
	if err := patternRows.Err(); err != nil {
		return nil, fmt.Errorf("loading line patterns: %w", err)
	}

	tripCount := 0
	for _, p := range patterns {
		lineID, direction := p[0], p[1]

		stopRows, err := l.db.Query(ctx, "SELECT stop_id FROM line_stops WHERE line_id=$1 AND direction=$2 ORDER BY stop_sequence", lineID, direction)
		if err != nil {
			return nil, fmt.Errorf("loading pattern %d/%d stops: %w", lineID, direction, err)
		}
		var stopIDs []timetable.StopID
		for stopRows.Next() {
			var sid int
			if err := stopRows.Scan(&sid); err != nil {
				stopRows.Close()
				return nil, fmt.Errorf("scanning pattern stop: %w", err)
			}
			stopIDs = append(stopIDs, timetable.StopID(sid))
		}
		stopRows.Close()
		if len(stopIDs) < 2 {
			continue
		}

		firstStopID := int(stopIDs[0])
		tripRows, err := l.db.Query(ctx, `
			SELECT departure_time FROM schedules
			WHERE line_id=$1 AND direction=$2 AND stop_id=$3 AND day_type=$4
			ORDER BY departure_time
		`, lineID, direction, firstStopID, dayType)
		if err != nil {
			log.Printf("skipping pattern %d/%d: %v", lineID, direction, err)
			continue
		}
		var startTimes []string
		for tripRows.Next() {
			var st string
			if err := tripRows.Scan(&st); err != nil {
				tripRows.Close()
				return nil, fmt.Errorf("scanning schedule: %w", err)
			}
			startTimes = append(startTimes, st)
		}
		tripRows.Close()

		for _, st := range startTimes {
			parsed, err := time.Parse("15:04:05", st)
			if err != nil {
				continue
			}
			depSecs := timetable.Time(parsed.Hour()*3600 + parsed.Minute()*60 + parsed.Second())

			conns := make([]timetable.Connection, 0, len(stopIDs)-1)
			cur := depSecs
			const travelTimePerHop = timetable.Time(180) // 3 minutes, matching the teacher's fixed offset.
			for i := 0; i < len(stopIDs)-1; i++ {
				next := cur + travelTimePerHop
				conns = append(conns, timetable.Connection{
					DepStop: stopIDs[i],
					ArrStop: stopIDs[i+1],
					DepTime: cur,
					ArrTime: next,
					TripID:  nextTripID,
				})
				cur = next
			}
			if err := b.AddTrip(&timetable.Trip{ID: nextTripID, Connections: conns}); err != nil {
				return nil, fmt.Errorf("pattern %d/%d trip departing %s: %w", lineID, direction, st, err)
			}
			nextTripID++
			tripCount++
		}
	}
	log.Printf("Loaded %d trips across %d patterns", tripCount, len(patterns))

	if err := l.loadFootpaths(ctx, b); err != nil {
		return nil, err
	}

	log.Printf("Timetable load complete in %s", time.Since(start))
	return b.Build()
}

// loadFootpaths generates walking transfers from PostGIS's ST_DWithin
// proximity index, assuming a 1 m/s walking speed.
func (l *Loader) loadFootpaths(ctx context.Context, b *timetable.Builder) error {
	rows, err := l.db.Query(ctx, `
		SELECT s1.id, s2.id, ST_Distance(s1.location::geography, s2.location::geography)
		FROM stops s1
		JOIN stops s2 ON ST_DWithin(s1.location::geography, s2.location::geography, 300)
		WHERE s1.id != s2.id
	`)
	if err != nil {
		return fmt.Errorf("loading footpaths: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id1, id2 int
		var dist float64
		if err := rows.Scan(&id1, &id2, &dist); err != nil {
			return fmt.Errorf("scanning footpath: %w", err)
		}
		b.AddFootpath(timetable.Footpath{
			From:     timetable.StopID(id1),
			To:       timetable.StopID(id2),
			Duration: timetable.Time(dist), // 1 m/s walking speed.
		})
		count++
	}
	log.Printf("Generated %d footpaths", count)
	return rows.Err()
}
