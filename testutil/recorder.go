package testutil

import (
	"sync"

	"github.com/comalice/signalx"
)

// Recorder is a Probe that keeps every event it observes.
type Recorder struct {
	mu     sync.Mutex
	events []signalx.Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Observe(ev signalx.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events in observation order.
func (r *Recorder) Events() []signalx.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]signalx.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of kind were observed for n.
func (r *Recorder) Count(n *signalx.Node, kind signalx.EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, ev := range r.events {
		if ev.Node == n && ev.Kind == kind {
			count++
		}
	}
	return count
}

// Order returns the names of the nodes that received events of kind, in order.
func (r *Recorder) Order(kind signalx.EventKind) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for _, ev := range r.events {
		if ev.Kind == kind {
			names = append(names, ev.Node.Name())
		}
	}
	return names
}

// Reset discards recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
