package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/antigravity/transitcore/internal/feed"
	"github.com/antigravity/transitcore/internal/feed/natsfeed"
	"github.com/antigravity/transitcore/internal/timetable"
)

var (
	natsURL     string
	natsSubject string
)

var subscribeLiveCmd = &cobra.Command{
	Use:   "subscribe-live",
	Short: "Load a timetable, build a live engine, and apply a NATS-delivered GTFS-realtime stream to it",
	RunE:  runSubscribeLive,
}

func init() {
	subscribeLiveCmd.Flags().StringVar(&natsURL, "nats-url", nats.DefaultURL, "NATS server URL")
	subscribeLiveCmd.Flags().StringVar(&natsSubject, "nats-subject", "gtfs.tripupdates", "NATS subject carrying GTFS-realtime FeedMessage payloads")
}

func runSubscribeLive(cmd *cobra.Command, args []string) error {
	tt, err := loadTimetable(context.Background())
	if err != nil {
		return err
	}
	eng, err := buildLiveEngine(algorithm, tt)
	if err != nil {
		return err
	}

	decoder := feed.NewDecoder()
	for _, trip := range tt.Trips {
		decoder.Seed(fmt.Sprintf("%d", trip.ID), trip)
	}

	conn, err := nats.Connect(natsURL)
	if err != nil {
		return fmt.Errorf("connecting to nats: %w", err)
	}
	defer conn.Close()

	sub := natsfeed.New(conn, decoder, natsSubject, func(updates []timetable.TripUpdate) {
		for _, u := range updates {
			if err := eng.ApplyUpdate(u); err != nil {
				fmt.Fprintf(os.Stderr, "applying update: %v\n", err)
			}
		}
	})

	shutdown := make(chan struct{})
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		close(shutdown)
	}()

	return sub.Run(shutdown)
}
