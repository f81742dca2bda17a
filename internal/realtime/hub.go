package realtime

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/doubtlink/doubtlink-api/internal/metrics"
)

// Hub fans events out to every connected session. Delivery is best-effort
// and fire-and-forget: no replay for late joiners, no acks, no ordering
// across independent producers. Callers must persist before they publish.
type Hub struct {
	// clients is owned by the Run loop; all mutation goes through the
	// register/unregister/broadcast channels.
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			metrics.ConnectedSessions.Inc()
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				metrics.ConnectedSessions.Dec()
			}
		case frame := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- frame:
				default:
					// Slow or gone; drop the session, never the broadcast.
					delete(h.clients, client)
					close(client.send)
					metrics.ConnectedSessions.Dec()
					metrics.DroppedSessions.Inc()
				}
			}
		}
	}
}

// Attach registers a session for conn and starts its pumps.
func (h *Hub) Attach(conn *websocket.Conn, onInbound InboundHandler) {
	NewClient(h, conn, onInbound).Start()
}

// Publish marshals the event envelope once and hands it to the broadcast
// loop. Marshal failures are logged and dropped; there is no error channel
// back to the producer.
func (h *Hub) Publish(event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("failed to marshal event payload",
			zap.String("event", event),
			zap.Error(err))

		return
	}

	frame, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		zap.L().Error("failed to marshal event envelope",
			zap.String("event", event),
			zap.Error(err))

		return
	}

	h.broadcast <- frame
	metrics.EventsBroadcast.WithLabelValues(event).Inc()
}
