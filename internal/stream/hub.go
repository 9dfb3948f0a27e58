// Package stream pushes run update events to connected websocket clients.
package stream

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/logging"
)

const (
	// writeWait bounds a single socket write.
	writeWait = 10 * time.Second
	// sendQueueSize is the per-subscriber event buffer. A full buffer
	// means the client stopped reading and the subscriber is dropped.
	sendQueueSize = 8
)

// Event is the single message shape sent to clients. Clients refetch the
// run state over HTTP when they receive one; the socket carries no game
// data itself.
type Event struct {
	Type  string `json:"type"`
	RunID string `json:"run_id"`
}

// subscriber owns one socket. All writes go through the send channel and a
// dedicated writer goroutine, so publishing never blocks on the network.
type subscriber struct {
	conn *websocket.Conn
	send chan Event
}

// writeLoop serializes writes to the socket under a deadline. It exits when
// the send channel closes or a write fails, closing the connection.
func (sub *subscriber) writeLoop() {
	defer sub.conn.Close()
	for evt := range sub.send {
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteJSON(evt); err != nil {
			return
		}
	}
}

// Hub fans run update notifications out to every socket subscribed to that
// run. It satisfies the service layer's Notifier interface.
type Hub struct {
	mu   sync.Mutex
	runs map[string]map[*subscriber]bool
}

func NewHub() *Hub {
	return &Hub{runs: make(map[string]map[*subscriber]bool)}
}

// Subscribe attaches a socket to a run's update feed and starts its writer.
// The returned function detaches the socket and closes it.
func (h *Hub) Subscribe(runID string, conn *websocket.Conn) func() {
	sub := &subscriber{conn: conn, send: make(chan Event, sendQueueSize)}
	h.mu.Lock()
	if h.runs[runID] == nil {
		h.runs[runID] = make(map[*subscriber]bool)
	}
	h.runs[runID][sub] = true
	h.mu.Unlock()
	go sub.writeLoop()
	return func() { h.drop(runID, sub) }
}

// drop detaches a subscriber once. Closing the send channel stops the
// writer, which closes the connection.
func (h *Hub) drop(runID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.runs[runID]
	if !ok || !set[sub] {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.runs, runID)
	}
	close(sub.send)
}

// RunUpdated queues an event for every subscriber of the run. The send is
// non-blocking; a subscriber with a full queue is dropped, so a stalled
// client can never hold up the caller.
func (h *Hub) RunUpdated(runID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.runs[runID]
	if !ok {
		return
	}
	evt := Event{Type: "run_updated", RunID: runID}
	for sub := range set {
		select {
		case sub.send <- evt:
		default:
			logging.Warn("dropping stalled stream subscriber", logging.Fields{"run_id": runID})
			delete(set, sub)
			close(sub.send)
		}
	}
	if len(set) == 0 {
		delete(h.runs, runID)
	}
}
