package production

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/signalx"
)

var ErrPublisherClosed = errors.New("publisher closed")

// PublishedEvent is a state change flattened for consumers outside the graph.
type PublishedEvent struct {
	ID        string    `json:"id"`
	CircuitID string    `json:"circuitID"`
	Node      string    `json:"node"`
	Source    string    `json:"source,omitempty"`
	From      bool      `json:"from"`
	To        bool      `json:"to"`
	Depth     int       `json:"depth"`
	Timestamp time.Time `json:"timestamp"`
}

// ChannelPublisher forwards state changes to a Go channel. By default
// publishing never blocks and events are dropped when the channel is full;
// WithBlocking makes every publish wait for the consumer.
type ChannelPublisher struct {
	mu        sync.RWMutex
	ch        chan<- PublishedEvent
	circuitID string
	closed    bool

	blockCtx context.Context // nil when non-blocking
	dropped  atomic.Uint64
}

// PublisherOption configures a ChannelPublisher.
type PublisherOption func(*ChannelPublisher)

// WithBlocking makes the publisher wait for channel space instead of
// dropping. Observe gives up once ctx is done.
func WithBlocking(ctx context.Context) PublisherOption {
	return func(p *ChannelPublisher) {
		p.blockCtx = ctx
	}
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(circuitID string, ch chan<- PublishedEvent, opts ...PublisherOption) *ChannelPublisher {
	p := &ChannelPublisher{ch: ch, circuitID: circuitID}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Observe implements signalx.Probe. Only Changed events are published.
func (p *ChannelPublisher) Observe(ev signalx.Event) {
	if ev.Kind != signalx.Changed {
		return
	}
	ctx := p.blockCtx
	if ctx == nil {
		ctx = context.Background()
	}
	_ = p.Publish(ctx, p.convert(ev))
}

func (p *ChannelPublisher) convert(ev signalx.Event) PublishedEvent {
	pe := PublishedEvent{
		ID:        uuid.NewString(),
		CircuitID: p.circuitID,
		Node:      ev.Node.Name(),
		From:      ev.From,
		To:        ev.State,
		Depth:     ev.Depth,
		Timestamp: time.Now(),
	}
	if ev.Source != nil {
		pe.Source = ev.Source.Name()
	}
	return pe
}

// Publish sends event. After Close it returns ErrPublisherClosed.
func (p *ChannelPublisher) Publish(ctx context.Context, event PublishedEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	if p.blockCtx != nil {
		select {
		case p.ch <- event:
			return nil
		case <-ctx.Done():
			p.dropped.Add(1)
			return ctx.Err()
		}
	}

	select {
	case p.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.dropped.Add(1)
		return nil // Non-blocking drop
	}
}

// Dropped returns how many events were not delivered.
func (p *ChannelPublisher) Dropped() uint64 {
	return p.dropped.Load()
}

// Close closes the channel. Later publishes are discarded. Close waits for
// publishes in flight, so a blocking publisher needs its consumer running
// or its context done.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.ch)
	return nil
}
