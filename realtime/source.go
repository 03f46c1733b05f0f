package realtime

import (
	"sync"
	"time"
)

// Source feeds requests into a Runtime.
type Source interface {
	Requests() <-chan Request
}

// ChannelSource is a Source backed by a Go channel owned by the caller.
type ChannelSource struct {
	ch chan Request
}

// NewChannelSource creates a ChannelSource with the given channel.
// The channel should be buffered if backpressure handling is needed.
func NewChannelSource(ch chan Request) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Requests returns the receive-only channel for requests.
func (s *ChannelSource) Requests() <-chan Request {
	return s.ch
}

// Clock toggles one node every period, starting with true. Wired to a chain
// of nodes it acts as an oscillator.
type Clock struct {
	ch       chan Request
	node     string
	priority int
	ticker   *time.Ticker
	stop     chan struct{}
	stopOnce sync.Once
}

// NewClock starts a clock that drives node every period.
func NewClock(node string, period time.Duration) *Clock {
	return NewClockWithPriority(node, period, 0)
}

// NewClockWithPriority is NewClock with a request priority.
func NewClockWithPriority(node string, period time.Duration, priority int) *Clock {
	c := &Clock{
		ch:       make(chan Request, 10),
		node:     node,
		priority: priority,
		ticker:   time.NewTicker(period),
		stop:     make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *Clock) run() {
	level := false
	for {
		select {
		case <-c.ticker.C:
			level = !level
			select {
			case c.ch <- Request{Node: c.node, State: level, Priority: c.priority}:
			default:
				// drop if full
			}
		case <-c.stop:
			c.ticker.Stop()
			close(c.ch)
			return
		}
	}
}

// Requests returns the request channel.
func (c *Clock) Requests() <-chan Request {
	return c.ch
}

// Stop stops the ticker and closes the channel.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}
