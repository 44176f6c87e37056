// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait is how long a single frame write may take before the
	// connection is considered dead.
	writeWait = 10 * time.Second

	// sendBuffer is the per-connection queue depth. When it fills the
	// connection is dropping frames and will resync via a status fetch
	// on its next reconnect.
	sendBuffer = 32
)

// Conn is the subset of websocket connection behavior the hub needs.
// *websocket.Conn satisfies it; tests substitute an in-memory pipe.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client is one live websocket connection in a hub's fan-out set. Its
// send channel decouples broadcasters from socket writes: Broadcast
// queues, the write pump drains.
type Client struct {
	conn Conn
	send chan []byte
}

func NewClient(conn Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// enqueue hands a frame to the write pump without blocking. Frames to a
// stalled connection are dropped.
func (c *Client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
		slog.Warn("dropping frame for slow websocket client")
	}
}

// SendJSON queues a frame addressed to this connection only, e.g. a
// status snapshot reply. Must only be called from the connection's own
// read loop, which is also the only caller of Unsubscribe.
func (c *Client) SendJSON(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal websocket frame", "error", err)
		return
	}
	c.enqueue(payload)
}

// writePump drains the send channel onto the socket. It exits, closing
// the socket, when the channel is closed by Unsubscribe or a write
// fails. Started by Hub.Subscribe.
func (c *Client) writePump() {
	defer c.conn.Close()

	for payload := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
