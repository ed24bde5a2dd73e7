package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/antigravity/transitcore/internal/timetable"
)

var routeCmd = &cobra.Command{
	Use:   "route <src> <dst> <depart>",
	Short: "Run one earliest-arrival query and print the resulting journey",
	Args:  cobra.ExactArgs(3),
	RunE:  runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	src, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid src stop id: %w", err)
	}
	dst, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid dst stop id: %w", err)
	}
	depart, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid departure time: %w", err)
	}

	tt, err := loadTimetable(context.Background())
	if err != nil {
		return err
	}
	eng, err := buildSnapshotEngine(algorithm, tt)
	if err != nil {
		return err
	}

	j, ok := eng.EarliestArrival(timetable.StopID(src), timetable.StopID(dst), timetable.Time(depart))
	if !ok {
		fmt.Println("no journey found")
		return nil
	}
	return json.NewEncoder(os.Stdout).Encode(j)
}
