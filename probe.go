package signalx

// EventKind distinguishes a delivered signal from an actual state flip.
type EventKind int

const (
	// Notified is emitted every time SetState reaches a node, including
	// deliveries that leave the state unchanged.
	Notified EventKind = iota
	// Changed is emitted when a node's state flips.
	Changed
)

func (k EventKind) String() string {
	switch k {
	case Notified:
		return "notified"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Event describes one step of a cascade as seen by the receiving node.
type Event struct {
	Kind   EventKind
	Node   *Node
	Source *Node // nil when the cascade started at Node
	From   bool  // Changed only
	State  bool
	Depth  int // edges travelled from the node where SetState was called
}

// Probe observes cascades. Implementations run synchronously on the
// propagating goroutine and must not block.
type Probe interface {
	Observe(ev Event)
}

// ProbeFunc adapts a plain function to Probe.
type ProbeFunc func(ev Event)

func (f ProbeFunc) Observe(ev Event) { f(ev) }

type multiProbe []Probe

func (m multiProbe) Observe(ev Event) {
	for _, p := range m {
		p.Observe(ev)
	}
}

// MultiProbe fans every event out to each non-nil probe in order.
func MultiProbe(probes ...Probe) Probe {
	var m multiProbe
	for _, p := range probes {
		if p != nil {
			m = append(m, p)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}
