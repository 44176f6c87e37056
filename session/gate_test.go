// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "testing"

func TestGateEmptyPollNoQuorum(t *testing.T) {
	g := newReadinessGate()
	if g.quorum() {
		t.Error("Empty poll must not satisfy quorum")
	}
}

func TestGateQuorumRequiresEveryone(t *testing.T) {
	g := newReadinessGate()
	g.join()
	g.join()

	if !g.markReady("p1") {
		t.Error("First markReady should report a change")
	}
	if g.quorum() {
		t.Error("Quorum must not hold at 1/2")
	}

	g.markReady("p2")
	if !g.quorum() {
		t.Error("Quorum must hold at 2/2")
	}

	ready, total := g.counts()
	if ready != 2 || total != 2 {
		t.Errorf("Expected counts 2/2, got %d/%d", ready, total)
	}
}

func TestGateMarkReadyMonotonic(t *testing.T) {
	g := newReadinessGate()
	g.join()

	g.markReady("p1")
	if g.markReady("p1") {
		t.Error("Repeated markReady should report no change")
	}

	ready, _ := g.counts()
	if ready != 1 {
		t.Errorf("Ready count inflated by repeat: got %d", ready)
	}
}

func TestGateDenominatorNeverDecreases(t *testing.T) {
	g := newReadinessGate()
	g.join()
	g.join()
	g.markReady("p1")

	// There is no leave operation at all; a disconnect never touches
	// the gate.
	_, total := g.counts()
	if total != 2 {
		t.Errorf("Expected denominator 2, got %d", total)
	}
}
