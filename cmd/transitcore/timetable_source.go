package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antigravity/transitcore/internal/ingest/pg"
	"github.com/antigravity/transitcore/internal/ingest/textfile"
	"github.com/antigravity/transitcore/internal/timetable"
)

// loadTimetable materialises a Timetable from whichever supplier the
// persistent flags select: --textfile for the reference connections-file
// supplier, --pg-dsn for the rail-operator Postgres/PostGIS supplier.
func loadTimetable(ctx context.Context) (*timetable.Timetable, error) {
	switch {
	case textfilePath != "":
		f, err := os.Open(textfilePath)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", textfilePath, err)
		}
		defer f.Close()
		return textfile.Load(f)
	case pgDSN != "":
		pool, err := pgxpool.New(ctx, pgDSN)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		defer pool.Close()
		return pg.NewLoader(pool).Load(ctx, dayType)
	default:
		return nil, fmt.Errorf("one of --textfile or --pg-dsn is required")
	}
}
