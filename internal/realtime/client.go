package realtime

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Envelope is the frame exchanged with browsers: an event name plus payload.
// Inbound events are join_room / join_role; outbound is receive_notification.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Client struct {
	conn   *websocket.Conn
	hub    *Hub
	userID string
	role   string
	send   chan []byte
	logger *zap.Logger
}

func NewClient(conn *websocket.Conn, hub *Hub, userID, role string, logger *zap.Logger) *Client {
	return &Client{
		conn:   conn,
		hub:    hub,
		userID: userID,
		role:   role,
		send:   make(chan []byte, 256),
		logger: logger.Named("WSClient"),
	}
}

// Run registers the client and services both pumps until the connection
// drops. The client is always joined to its own user room; role rooms are
// joined on request but only for the authenticated role.
func (c *Client) Run() {
	c.hub.AddClient(c)
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.RemoveClient(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var envelope Envelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			c.logger.Debug("Dropping malformed frame", zap.String("userID", c.userID))
			continue
		}

		switch envelope.Event {
		case "join_room":
			// clients are already in their own room; nothing to do
		case "join_role":
			var role string
			if err := json.Unmarshal(envelope.Data, &role); err != nil {
				continue
			}
			if role == c.role {
				c.hub.JoinRole(c, role)
			}
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
