package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var loadTimetableCmd = &cobra.Command{
	Use:   "load-timetable",
	Short: "Load a timetable from the configured supplier and print a summary",
	RunE:  runLoadTimetable,
}

func runLoadTimetable(cmd *cobra.Command, args []string) error {
	tt, err := loadTimetable(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("stops=%d trips=%d connections=%d\n", len(tt.Stops), len(tt.Trips), len(tt.Connections()))
	return nil
}
