// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds the authoritative per-poll state and the rules
for turning votes into a winner.

# Poll Session

A Session owns one poll's options, participants, votes, readiness, and
lifecycle phase. Every mutation is serialized through the session's
mutex, so lifecycle transitions are linearizable per poll and the
broadcast order observed by clients matches the order mutations
committed. Different polls share nothing but the registry map.

The lifecycle is collecting → revealed, terminal. Deletion is a
registry-level removal, not a stored phase.

# Session Registry

Registry maps poll id → Session and is the only cross-session shared
structure. Create, Get, Delete, Clone, and List are each atomic with
respect to the map and independent of any session's internal lock.

# Vote Aggregator

Winner is a pure function over (options, votes): score each option by
the mean of its non-veto numeric ratings and exclude any vetoed
option. When every option is vetoed that rule would leave no winner,
so it is waived and raw means over all numeric ratings are compared
instead. Ties break toward the earliest-created option.

# Readiness Gate

readinessGate maintains the ready count and the joined-participant
denominator incrementally. Quorum — every joined participant ready,
and at least one joined — triggers the one-time reveal transition
inside MarkReady. Disconnects retract nothing: readiness and votes
persist through connection loss.

# Errors

Rejected mutations wrap one of ErrNotFound, ErrForbidden,
ErrPollClosed, or ErrInvalidInput; handlers map these to HTTP status
codes with errors.Is. Mutations are atomic: fully applied and
broadcast, or rejected with nothing broadcast.
*/
package session
