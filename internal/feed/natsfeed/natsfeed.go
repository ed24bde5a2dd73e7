// Package natsfeed is the thin messaging-transport adapter spec §1 calls
// an external collaborator: it receives GTFS-realtime bytes over NATS and
// forwards them to a feed.Decoder. It carries no retry/ack/backoff logic
// of its own — that belongs to the transport, which the core explicitly
// does not specify.
//
// Grounded on OpenTransitTools-transitcast's
// app/gtfs-tripupdate-svc/tripupdate/trip_update_listener.go: a buffered
// nats.ChanSubscribe loop selecting between the message channel and a
// shutdown signal.
package natsfeed

import (
	"log"

	"github.com/nats-io/nats.go"

	"github.com/antigravity/transitcore/internal/feed"
	"github.com/antigravity/transitcore/internal/timetable"
)

// Subscriber listens on one NATS subject for GTFS-realtime FeedMessage
// payloads and decodes each into TripUpdates, handed to Handler.
type Subscriber struct {
	conn    *nats.Conn
	decoder *feed.Decoder
	subject string
	// Handler receives the TripUpdates decoded from one message. Errors are
	// logged, not retried — the core's no-local-recovery policy (spec §7)
	// applies to the update stream too.
	Handler func([]timetable.TripUpdate)
}

// New wraps an existing NATS connection and decoder.
func New(conn *nats.Conn, decoder *feed.Decoder, subject string, handler func([]timetable.TripUpdate)) *Subscriber {
	return &Subscriber{conn: conn, decoder: decoder, subject: subject, Handler: handler}
}

// Run subscribes to the configured subject and processes messages until
// shutdown is closed or signaled.
func (s *Subscriber) Run(shutdown <-chan struct{}) error {
	ch := make(chan *nats.Msg, 64)
	sub, err := s.conn.ChanSubscribe(s.subject, ch)
	if err != nil {
		return err
	}
	log.Printf("subscribed to %s on nats: %v", s.subject, s.conn.Servers())

	for {
		select {
		case msg := <-ch:
			updates, err := s.decoder.Decode(msg.Data)
			if err != nil {
				log.Printf("natsfeed: decoding message on %s: %v", s.subject, err)
				continue
			}
			if len(updates) > 0 && s.Handler != nil {
				s.Handler(updates)
			}
		case <-shutdown:
			log.Printf("natsfeed: shutting down subscription to %s", s.subject)
			return sub.Unsubscribe()
		}
	}
}
