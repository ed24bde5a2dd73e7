package timetable

// Footpath is a walking transfer between two stops. Every stop must carry
// a self-loop footpath (From == To) representing the minimum interchange
// time, often zero. The relation is not required to be symmetric.
type Footpath struct {
	From     StopID
	To       StopID
	Duration Time
}
