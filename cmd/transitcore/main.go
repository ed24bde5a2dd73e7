// Command transitcore is the peripheral CLI spec §6 describes: subcommands
// for loading a timetable, subscribing to a live update feed, running the
// benchmark harness, looking up a trip, and routing a one-shot query, plus
// "serve" for the HTTP query surface. Grounded on tidbyt-gtfs/cmd/main.go's
// persistent-flags-on-root-command, one-file-per-subcommand, RunE-returns-
// error-tidied-by-SilenceUsage shape.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "transitcore",
	Short:        "Earliest-arrival transit routing engine and benchmark harness",
	SilenceUsage: true,
}

var (
	textfilePath string
	pgDSN        string
	dayType      string
	algorithm    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&textfilePath, "textfile", "", "path to a reference connections file")
	rootCmd.PersistentFlags().StringVar(&pgDSN, "pg-dsn", "", "Postgres/PostGIS connection string for the rail-operator supplier")
	rootCmd.PersistentFlags().StringVar(&dayType, "day-type", "weekday", "service day type when loading from Postgres (weekday|saturday|sunday)")
	rootCmd.PersistentFlags().StringVar(&algorithm, "algorithm", "raptor", "routing algorithm: csa|td|raptor")

	rootCmd.AddCommand(loadTimetableCmd)
	rootCmd.AddCommand(subscribeLiveCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(tripLookupCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
