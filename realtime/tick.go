package realtime

import "log/slog"

// processTick applies one complete tick
func (rt *Runtime) processTick() {
	// Phase 1: Collect requests atomically
	reqs := rt.collectRequests()

	// Phase 2: Sort for deterministic order
	sortRequests(reqs)

	// Phase 3: Drive the circuit
	rt.applyRequests(reqs)
}

// collectRequests atomically retrieves and clears the request batch
func (rt *Runtime) collectRequests() []Request {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()

	reqs := rt.batch
	rt.batch = make([]Request, 0, cap(rt.batch))
	return reqs
}

func (rt *Runtime) applyRequests(reqs []Request) {
	rt.stateMu.Lock()
	defer rt.stateMu.Unlock()

	for _, req := range reqs {
		if err := rt.circuit.Set(req.Node, req.State); err != nil {
			rt.logger.Warn("request dropped",
				slog.String("node", req.Node),
				slog.Uint64("seq", req.SequenceNum),
				slog.Any("error", err),
			)
		}
	}
}
