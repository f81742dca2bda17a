package realtime

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// InboundHandler receives raw frames read from a client connection.
type InboundHandler func(frame []byte)

// Client is one anonymous connected session. No handshake beyond the
// websocket upgrade; sender identity arrives inside event payloads.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
	onInbound InboundHandler
}

func NewClient(hub *Hub, conn *websocket.Conn, onInbound InboundHandler) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		sessionID: uuid.NewString(),
		onInbound: onInbound,
	}
}

func (c *Client) SessionID() string {
	return c.sessionID
}

// Start registers the session and spins up its pumps.
func (c *Client) Start() {
	c.hub.register <- c

	go c.writePump()
	go c.readPump()
}

func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}

	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("unexpected websocket close",
					zap.String("session_id", c.sessionID),
					zap.Error(err))
			}
			break
		}

		if c.onInbound != nil {
			c.onInbound(message)
		}
	}
}
