package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// Hub tracks live websocket clients by user room and role room and delivers
// payloads best-effort: a slow client's buffer overflowing drops the message
// for that connection, never blocking the sender.
type Hub struct {
	clientsByUser map[string]map[*Client]struct{}
	clientsByRole map[string]map[*Client]struct{}
	mu            sync.RWMutex
	logger        *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clientsByUser: make(map[string]map[*Client]struct{}),
		clientsByRole: make(map[string]map[*Client]struct{}),
		logger:        logger.Named("Hub"),
	}
}

func (h *Hub) AddClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clientsByUser[c.userID]; !ok {
		h.clientsByUser[c.userID] = make(map[*Client]struct{})
	}
	h.clientsByUser[c.userID][c] = struct{}{}
	h.logger.Debug("Client connected", zap.String("userID", c.userID))
}

func (h *Hub) RemoveClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clientsByUser[c.userID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clientsByUser, c.userID)
		}
	}
	for role, set := range h.clientsByRole {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clientsByRole, role)
		}
	}
	h.logger.Debug("Client disconnected", zap.String("userID", c.userID))
}

// JoinRole subscribes the client to a role room, e.g. "admin".
func (h *Hub) JoinRole(c *Client, role string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clientsByRole[role]; !ok {
		h.clientsByRole[role] = make(map[*Client]struct{})
	}
	h.clientsByRole[role][c] = struct{}{}
}

// SendToUser pushes a payload to every live connection of one user.
func (h *Hub) SendToUser(userID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clientsByUser[userID] {
		select {
		case c.send <- payload:
		default:
			// slow client, drop
		}
	}
}

// SendToRole pushes a payload to every connection subscribed to a role room.
func (h *Hub) SendToRole(role string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clientsByRole[role] {
		select {
		case c.send <- payload:
		default:
		}
	}
}

// ConnectedUsers reports how many distinct users currently hold a connection.
func (h *Hub) ConnectedUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clientsByUser)
}
