// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

// readinessGate tracks which participants have declared readiness and
// whether the quorum condition for reveal holds. Counters are
// maintained incrementally so markReady stays O(1); nothing here
// rescans participant sets. The gate is not safe for concurrent use on
// its own — the owning Session's lock serializes access.
type readinessGate struct {
	ready      map[string]bool
	readyCount int
	total      int
}

func newReadinessGate() readinessGate {
	return readinessGate{ready: make(map[string]bool)}
}

// join increments the quorum denominator. Called once per distinct
// participant; the denominator never decreases, a disconnect is a
// connection-layer event and retracts nothing.
func (g *readinessGate) join() {
	g.total++
}

// markReady records readiness for the participant. Readiness is
// monotonic: marking an already-ready participant changes nothing.
// Returns whether the ready count changed.
func (g *readinessGate) markReady(participantID string) bool {
	if g.ready[participantID] {
		return false
	}
	g.ready[participantID] = true
	g.readyCount++
	return true
}

// quorum reports whether every joined participant has declared
// readiness. An empty poll never satisfies quorum.
func (g *readinessGate) quorum() bool {
	return g.total > 0 && g.readyCount == g.total
}

func (g *readinessGate) counts() (ready, total int) {
	return g.readyCount, g.total
}
