package events

import (
	"encoding/json"
	"sync"
)

const (
	// EventSessionChange fires whenever the current session pointer moves
	// (login, logout, qr confirm).
	EventSessionChange = "sessionchange"
	// EventOrdersChange fires on every order mutation so open views can
	// refresh without a reload.
	EventOrdersChange = "orderschange"
)

// Event is a change notification pushed to every connected client. It is
// the server-side replacement for the SPA's in-window CustomEvent plus
// the cross-tab storage listener.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub fans events out to all active WebSocket connections.
type Hub struct {
	mu          sync.RWMutex
	nextID      int64
	connections map[int64]*connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	c.id = h.nextID
	h.connections[c.id] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.id]; ok && existing == c {
		delete(h.connections, c.id)
		close(c.send)
	}
}

// Broadcast sends the event to every connection. Slow clients are dropped
// rather than blocking the caller.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.connections {
		select {
		case c.send <- data:
		default:
		}
	}
}

// SessionChanged publishes a sessionchange event. Username is empty on
// logout.
func (h *Hub) SessionChanged(username string) {
	h.Broadcast(Event{Type: EventSessionChange, Payload: map[string]string{"username": username}})
}

// OrdersChanged publishes an orderschange event.
func (h *Hub) OrdersChanged() {
	h.Broadcast(Event{Type: EventOrdersChange})
}
