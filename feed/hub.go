// Package feed streams engine events to websocket clients as JSON
package feed

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/event"
	"github.com/lixenwraith/sinkhole/parameter"
)

// Hub accepts websocket clients and fans out events to all of them
// HandleEvent runs on the sim goroutine and never blocks; a client whose backlog is full loses the message
type Hub struct {
	upgrader websocket.Upgrader
	log      *log.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	sent    atomic.Uint64
	dropped atomic.Uint64
}

// client owns one connection; only its writer goroutine writes to conn
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// NewHub creates a hub; logger may be nil
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log:     logger,
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and blocks until the client disconnects
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Printf("[feed] upgrade failed: %v", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, parameter.FeedClientBuffer),
		done: make(chan struct{}),
	}
	if !h.add(c) {
		conn.Close()
		return
	}
	h.log.Printf("[feed] client %s connected from %s", c.id, conn.RemoteAddr())

	core.Go(func() { h.writeLoop(c) })

	// Reads only detect disconnects; inbound messages are ignored
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(c)
	h.log.Printf("[feed] client %s disconnected", c.id)
}

func (h *Hub) writeLoop(c *client) {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.FeedWriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.log.Printf("[feed] write to client %s failed: %v", c.id, err)
				h.remove(c)
				return
			}
			h.sent.Add(1)
		}
	}
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.close()
}

// Broadcast encodes v once and queues it for every client
func (h *Hub) Broadcast(v any) error {
	msg, err := json.Marshal(v)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.dropped.Add(1)
		}
	}
	return nil
}

// HandleEvent implements engine.EventHandler
func (h *Hub) HandleEvent(ev event.GameEvent) {
	if err := h.Broadcast(ev); err != nil {
		h.log.Printf("[feed] failed to encode %s event: %v", ev.Type, err)
	}
}

// EventTypes implements engine.EventHandler
func (h *Hub) EventTypes() []event.EventType {
	return event.AllEventTypes()
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ClientIDs returns the ids of connected clients in no particular order
func (h *Hub) ClientIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.clients))
	for c := range h.clients {
		ids = append(ids, c.id)
	}
	return ids
}

// Stats is a point-in-time view of the hub counters
type Stats struct {
	Clients int    `json:"clients"`
	Sent    uint64 `json:"sent"`
	Dropped uint64 `json:"dropped"`
}

// Stats snapshots the counters; safe from any goroutine
func (h *Hub) Stats() Stats {
	return Stats{Clients: h.Clients(), Sent: h.Sent(), Dropped: h.Dropped()}
}

// Sent returns the number of messages written to clients
func (h *Hub) Sent() uint64 { return h.sent.Load() }

// Dropped returns the number of messages lost to full client backlogs
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

// Close disconnects every client and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	clear(h.clients)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}
