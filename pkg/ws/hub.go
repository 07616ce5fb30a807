package ws

import (
	"sync"

	"social-platform/pkg/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client is one authenticated live channel. Writes go through Send so
// a single goroutine owns the connection's write side.
type Client struct {
	UserID uint
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub is the presence registry: user id to at most one live channel.
// It is owned by the composition root and injected wherever delivery
// is needed; there is no package-global instance.
//
// Mutation rules:
//   - Register overwrites any prior entry for the user without
//     closing the evicted channel; the old socket stays open but no
//     longer receives forwarded messages.
//   - Unregister removes the entry only if it still points at the
//     closing client, so a stale close never evicts a newer login.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]*Client)}
}

// Register installs the client as the user's live channel.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[client.UserID]; ok && old != client {
		logger.Info("presence entry evicted by newer channel",
			zap.Uint("user_id", client.UserID),
		)
	}
	h.clients[client.UserID] = client
}

// Unregister removes the client's entry unless a newer channel has
// already replaced it.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.clients[client.UserID]; ok && current == client {
		delete(h.clients, client.UserID)
	}
}

// SendToUser attempts delivery to the user's live channel. Returns
// false when the user has no channel or its buffer is full; the write
// is never retried either way.
func (h *Hub) SendToUser(userID uint, payload []byte) bool {
	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case client.Send <- payload:
		return true
	default:
		// Channel buffer full: the connection is stalled or dead.
		// Drop the frame; the persisted copy is the durability path.
		return false
	}
}

// IsOnline reports whether a user has a live channel.
func (h *Hub) IsOnline(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// OnlineCount returns the number of live channels.
func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
