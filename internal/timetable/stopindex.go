package timetable

// StopIndex is an engine-local remapping from an opaque StopID to a dense
// 0..n-1 range, replacing the reference implementation's fixed MAX_STATIONS
// array (spec §9 "max_stops constant"). Every engine builds one of these at
// construction time and sizes its scratch arrays by Len(), not by the
// largest stop id ever seen.
type StopIndex struct {
	toDense map[StopID]int
	toStop  []StopID
}

// NewStopIndex builds a dense index covering exactly the given stops,
// deduplicated, in first-seen order.
func NewStopIndex(stops ...StopID) *StopIndex {
	idx := &StopIndex{toDense: make(map[StopID]int, len(stops))}
	for _, s := range stops {
		idx.Add(s)
	}
	return idx
}

// Add registers a stop if it isn't already known and returns its dense
// index either way.
func (idx *StopIndex) Add(s StopID) int {
	if i, ok := idx.toDense[s]; ok {
		return i
	}
	i := len(idx.toStop)
	idx.toDense[s] = i
	idx.toStop = append(idx.toStop, s)
	return i
}

// Dense returns the dense index for a known stop.
func (idx *StopIndex) Dense(s StopID) (int, bool) {
	i, ok := idx.toDense[s]
	return i, ok
}

// Stop returns the opaque stop id for a dense index.
func (idx *StopIndex) Stop(i int) StopID { return idx.toStop[i] }

// Len is the number of distinct stops in the index.
func (idx *StopIndex) Len() int { return len(idx.toStop) }
