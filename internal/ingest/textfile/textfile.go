// Package textfile implements the reference timetable supplier from spec
// §6: a "connections" file with one record per line, four whitespace
// separated unsigned integers `dep_stop arr_stop dep_time arr_time`. Each
// line becomes a singleton trip, matching original_source's smallest test
// fixtures (the seed scenarios in spec §8 are shaped exactly like this).
package textfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antigravity/transitcore/internal/timetable"
)

// Load reads a connections file from r and returns the resulting
// timetable. The in-memory/text supplier's self-loop default is zero
// (spec §6), unlike the rail-operator supplier's 12 minutes.
func Load(r io.Reader) (*timetable.Timetable, error) {
	b := timetable.NewBuilder(0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("textfile: line %d: want 4 fields, got %d", lineNo, len(fields))
		}
		values := make([]uint64, 4)
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("textfile: line %d: field %d: %w", lineNo, i, err)
			}
			values[i] = v
		}
		conn := timetable.Connection{
			DepStop: values[0],
			ArrStop: values[1],
			DepTime: timetable.Time(values[2]),
			ArrTime: timetable.Time(values[3]),
		}
		if err := b.AddConnectionsAsTrip(conn); err != nil {
			return nil, fmt.Errorf("textfile: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("textfile: reading: %w", err)
	}
	return b.Build()
}
