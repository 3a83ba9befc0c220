// Package hub broadcasts product lifecycle events to connected websocket
// listeners. Delivery is fire-and-forget: a listener that cannot keep up is
// dropped and a failed delivery never affects the CRUD operation.
package hub

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/models"
)

// Event is the message pushed to listeners.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// Notification is the payload of the demo client-to-all broadcast. It
// carries no server state.
type Notification struct {
	User    string `json:"user"`
	Message string `json:"message"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans events out to all connected clients. All client bookkeeping
// happens on the run loop goroutine.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Event
	register   chan *Client
	unregister chan *Client
}

func New() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes registrations and broadcasts until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			// One-time greeting to the connecting client only.
			c.queue(Event{Event: "connected"})
			slog.Info("websocket client connected", "clients", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				slog.Info("websocket client disconnected", "clients", len(h.clients))
			}
		case ev := <-h.broadcast:
			for c := range h.clients {
				if !c.queue(ev) {
					delete(h.clients, c)
					close(c.send)
					slog.Warn("dropped slow websocket client", "event", ev.Event)
				}
			}
		}
	}
}

// ProductChanged implements service.Notifier. The event is queued without
// blocking; if the hub is saturated the event is dropped.
func (h *Hub) ProductChanged(action string, p models.Product) {
	select {
	case h.broadcast <- Event{Event: action, Payload: p}:
	default:
		slog.Warn("notification dropped, hub saturated", "event", action, "id", p.ID)
	}
}

// Handler upgrades the request to a websocket connection and registers the
// client with the hub.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("failed to upgrade the websocket", "error", err)
			return
		}
		client := &Client{hub: h, conn: conn, send: make(chan Event, 16)}
		h.register <- client
		go client.writePump()
		go client.readPump()
	}
}
