package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/antigravity/transitcore/internal/httpapi"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP routing API (spec's outbound query surface)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "HTTP listen port")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tt, err := loadTimetable(ctx)
	if err != nil {
		return err
	}
	eng, err := buildSnapshotEngine(algorithm, tt)
	if err != nil {
		return err
	}

	api := &httpapi.API{Engine: eng, Timetable: tt}

	port := servePort
	if v := os.Getenv("PORT"); v != "" {
		port = v
	}

	log.Printf("transitcore serving on :%s (algorithm=%s)", port, algorithm)
	return http.ListenAndServe(":"+port, api.Router())
}
