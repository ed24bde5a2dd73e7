package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var tripLookupCmd = &cobra.Command{
	Use:   "trip-lookup <trip_id>",
	Short: "Print a trip's connections by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripLookup,
}

func runTripLookup(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid trip id: %w", err)
	}

	tt, err := loadTimetable(context.Background())
	if err != nil {
		return err
	}
	trip, ok := tt.Trips[id]
	if !ok {
		return fmt.Errorf("trip %d not found", id)
	}
	return json.NewEncoder(os.Stdout).Encode(trip)
}
