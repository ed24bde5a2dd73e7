// Package feed is the GTFS-realtime-backed update supplier from spec §6:
// it decodes FeedMessage protobufs into the core's timetable.TripUpdate
// values. Grounded on tidbyt-gtfs/parse/realtime.go's header validation
// and per-entity schedule_relationship switch, adapted to emit
// timetable.TripUpdate (the core's mutation protocol) instead of a flat
// []*StopTimeUpdate.
//
// A realtime feed reports delays against a trip's static stop times, not
// the (old_trip, new_trip) pair the core's protocol wants. Decoder keeps
// the last known version of every trip it has seen (seeded from the
// static timetable at startup) so every update can be expressed as the
// uniform delete-old/add-new mutation pair raptor_btree.rs already uses
// internally for AddConnection/DeleteConnection — a coarser but always
// correct translation that needs no per-connection diffing logic here.
package feed

import (
	"fmt"

	gtfsproto "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/antigravity/transitcore/internal/timetable"
)

// Decoder translates GTFS-realtime FeedMessages into TripUpdates, tracking
// the last known connections of every trip it has been told about.
type Decoder struct {
	tripByGTFSID map[string]timetable.TripID
	known        map[timetable.TripID]*timetable.Trip
	nextID       timetable.TripID
}

// NewDecoder returns an empty decoder. Call Seed for every trip in the
// static schedule before decoding any realtime feed, so that cancellation
// and delay updates can be resolved against a known prior state.
func NewDecoder() *Decoder {
	return &Decoder{
		tripByGTFSID: make(map[string]timetable.TripID),
		known:        make(map[timetable.TripID]*timetable.Trip),
	}
}

// Seed registers a trip from the static schedule under its GTFS trip_id
// string, so realtime entities naming that id can be resolved.
func (d *Decoder) Seed(gtfsTripID string, trip *timetable.Trip) {
	d.tripByGTFSID[gtfsTripID] = trip.ID
	d.known[trip.ID] = trip
	if trip.ID >= d.nextID {
		d.nextID = trip.ID + 1
	}
}

// Decode parses one FeedMessage and returns the TripUpdates it implies.
// Supported schedule_relationship values are SCHEDULED (delays to the
// trip's existing stops, translated as delete-old + add-new) and CANCELED (delete only); ADDED,
// UNSCHEDULED and DUPLICATED are not supported, matching tidbyt-gtfs's own
// scope (extra/frequency-based/duplicated trips need a richer static
// model than a bare trip_id lookup can resolve).
func (d *Decoder) Decode(raw []byte) ([]timetable.TripUpdate, error) {
	msg := &gtfsproto.FeedMessage{}
	if err := proto.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("feed: unmarshaling protobuf: %w", err)
	}

	header := msg.GetHeader()
	version := header.GetGtfsRealtimeVersion()
	if version != "2.0" && version != "1.0" {
		return nil, fmt.Errorf("feed: version %s not supported", version)
	}
	if header.GetIncrementality() != gtfsproto.FeedHeader_FULL_DATASET {
		return nil, fmt.Errorf("feed: incrementality %s not supported", header.GetIncrementality())
	}

	var updates []timetable.TripUpdate
	for _, entity := range msg.GetEntity() {
		tu := entity.GetTripUpdate()
		if tu == nil {
			continue
		}
		trip := tu.GetTrip()
		if trip == nil || trip.GetTripId() == "" {
			continue
		}

		tripID, ok := d.tripByGTFSID[trip.GetTripId()]
		if !ok {
			continue // unseeded trip id: no static baseline to diff against.
		}
		old := d.known[tripID]

		switch trip.GetScheduleRelationship() {
		case gtfsproto.TripDescriptor_SCHEDULED:
			newTrip := applyStopTimeUpdates(old, tu.GetStopTimeUpdate())
			updates = append(updates,
				timetable.DeleteTrip{Trip: old},
				timetable.AddTrip{Trip: newTrip},
			)
			d.known[tripID] = newTrip
		case gtfsproto.TripDescriptor_CANCELED:
			updates = append(updates, timetable.DeleteTrip{Trip: old})
			delete(d.known, tripID)
			delete(d.tripByGTFSID, trip.GetTripId())
		}
	}
	return updates, nil
}

// applyStopTimeUpdates rebuilds a trip's connections, applying each
// StopTimeUpdate's arrival delay to both times of the connection at its
// stop sequence index (departure delays are not read) and propagating the same delay to every later connection
// that has no explicit update of its own — the usual GTFS-realtime
// semantics for a single delay announcement covering the rest of a trip.
func applyStopTimeUpdates(old *timetable.Trip, stus []*gtfsproto.TripUpdate_StopTimeUpdate) *timetable.Trip {
	conns := make([]timetable.Connection, len(old.Connections))
	copy(conns, old.Connections)

	delayByIndex := make(map[int]timetable.Time)
	for _, stu := range stus {
		idx := int(stu.GetStopSequence())
		if idx <= 0 || idx > len(conns) {
			continue
		}
		delay := timetable.Time(stu.GetArrival().GetDelay())
		delayByIndex[idx-1] = delay
	}

	var carry timetable.Time
	for i := range conns {
		if d, ok := delayByIndex[i]; ok {
			carry = d
		}
		conns[i].DepTime += carry
		conns[i].ArrTime += carry
	}

	return &timetable.Trip{ID: old.ID, Connections: conns}
}
