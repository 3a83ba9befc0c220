package hub

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client is a single websocket listener.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Event
}

// queue offers an event to the client without blocking. It reports false
// when the client's buffer is full, in which case the hub evicts it.
func (c *Client) queue(ev Event) bool {
	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

// readPump consumes inbound messages. The only inbound message is the demo
// "send notification" echo, which is re-broadcast to all listeners and
// touches no server state.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		var n Notification
		if err := c.conn.ReadJSON(&n); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read failed", "error", err)
			}
			return
		}
		if n.Message == "" {
			continue
		}
		select {
		case c.hub.broadcast <- Event{Event: "notification", Payload: n}:
		default:
		}
	}
}

// writePump delivers queued events and keeps the connection alive with
// pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case ev, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
