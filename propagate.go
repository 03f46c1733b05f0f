package signalx

// delivery is one pending SetState call on the worklist.
type delivery struct {
	node   *Node
	source *Node
	depth  int
}

// cascade walks the output graph depth-first with an explicit stack. Outputs
// are pushed in reverse so they pop in insertion order, which visits nodes in
// the same order as calling SetState on each output in turn.
func (n *Node) cascade(state bool) {
	var visited map[*Node]struct{}
	if n.mode == ModeOnce {
		visited = make(map[*Node]struct{})
	}

	stack := []delivery{{node: n}}
	for len(stack) > 0 {
		d := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited != nil {
			if _, seen := visited[d.node]; seen {
				continue
			}
			visited[d.node] = struct{}{}
		}

		d.node.emit(Event{Kind: Notified, Node: d.node, Source: d.source, From: d.node.state, State: state, Depth: d.depth})
		if d.node.state == state {
			continue
		}

		from := d.node.state
		d.node.state = state
		d.node.emit(Event{Kind: Changed, Node: d.node, Source: d.source, From: from, State: state, Depth: d.depth})

		outs := d.node.outputs
		for i := len(outs) - 1; i >= 0; i-- {
			stack = append(stack, delivery{node: outs[i], source: d.node, depth: d.depth + 1})
		}
	}
}

func (n *Node) emit(ev Event) {
	if n.probe != nil {
		n.probe.Observe(ev)
	}
}
