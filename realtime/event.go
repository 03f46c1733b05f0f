package realtime

import "sort"

// Request asks the runtime to drive a node to a state on the next tick.
type Request struct {
	Node        string
	State       bool
	Priority    int
	SequenceNum uint64
}

// sortRequests orders requests deterministically
func sortRequests(reqs []Request) {
	// Stable sort preserves insertion order for equal priorities
	sort.SliceStable(reqs, func(i, j int) bool {
		// Primary: Higher priority first
		if reqs[i].Priority != reqs[j].Priority {
			return reqs[i].Priority > reqs[j].Priority
		}

		// Secondary: Earlier sequence number first (FIFO)
		return reqs[i].SequenceNum < reqs[j].SequenceNum
	})
}

// Request ordering guarantees:
// 1. Requests from one goroutine are applied in submission order
// 2. Higher priority requests are applied first
// 3. Ties are broken by sequence number
// 4. The last request for a node within a tick decides its state
