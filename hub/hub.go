// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Hub fans out events to every live connection subscribed to it. One
// Hub exists per poll session, plus a single registry-wide lobby Hub.
//
// Delivery is at-most-once per connection per event and fire-and-forget:
// a slow or dead connection has the frame dropped rather than blocking
// the mutation that produced it or delivery to other connections.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func New() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Subscribe adds a connection to the fan-out set and starts its write
// pump. The client must belong to exactly one hub.
func (h *Hub) Subscribe(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	go c.writePump()
}

// Unsubscribe removes a connection from the fan-out set and closes its
// send channel, which stops the write pump and closes the socket. Safe
// to call once per client, after its read loop has returned.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Broadcast marshals the event once and queues it on every subscribed
// connection. The caller is expected to hold whatever serialization
// produced the event, so frames are queued in mutation-commit order.
func (h *Hub) Broadcast(event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal broadcast event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.enqueue(payload)
	}
}

// ConnCount returns the number of currently subscribed connections.
// This is the live-connection count, distinct from a poll's joined
// participant count, which never decreases.
func (h *Hub) ConnCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
