// Package timetable implements the core data model described in the
// routing engine's timetable section: connections, trips, stops, footpaths
// and the live-update protocol that mutates them.
package timetable

// StopID and TripID are opaque identifiers. The core never interprets
// their bits; suppliers are free to hand out any uint64 they like as long
// as it is unique within a timetable day.
type StopID = uint64

// TripID identifies a trip uniquely within the timetable day it belongs to.
type TripID = uint64

// Time is a monotonic time unit since some epoch the supplier picked
// (seconds since midnight for the reference suppliers). The core never
// looks at wall-clock time; it only compares Time values.
type Time = int64
