// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub implements websocket fan-out for poll events.

A Hub maintains the set of live connections subscribed to one event
channel. Each poll session owns a Hub; one additional registry-wide Hub
serves as the lobby broadcaster for poll_created, poll_deleted, and
poll_cloned events.

Each connection is wrapped in a Client with a buffered send channel and
a write pump goroutine. Broadcast marshals an event once and queues it
on every client without blocking; a client whose buffer is full has the
frame dropped. The hub deduplicates nothing — consumers treat repeated
delivery of a semantically identical event as idempotent by identifier.

Ordering: Broadcast queues frames in call order, so callers that
broadcast while holding their own mutation lock get fan-out in
mutation-commit order per connection.
*/
package hub
