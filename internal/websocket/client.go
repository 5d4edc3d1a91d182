package websocket

import (
	"log"
	"net/http"
	"time"

	"chatroom/internal/hub"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cross-origin policy is enforced by the CORS layer in front of
		// the router.
		return true
	},
}

// Client ties one websocket connection to one hub subscription. The stream
// is server to client only: events flow out, inbound frames beyond the
// close/ping machinery are discarded.
type Client struct {
	conn *websocket.Conn
	hub  *hub.Hub
	sub  *hub.Subscriber
}

// Serve upgrades the request, subscribes to the hub, and pumps events until
// the peer disconnects or falls behind.
func Serve(h *hub.Hub, w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		conn: conn,
		hub:  h,
		sub:  h.Subscribe(),
	}

	go client.writePump()
	client.readPump()
	return nil
}

// readPump keeps the connection's read side alive and tears the client down
// when the peer goes away. Unsubscribing here is what ends the write pump.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unsubscribe(c.sub)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("subscriber %s: failed to set read deadline: %v", c.sub.ID(), err)
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("subscriber %s: read error: %v", c.sub.ID(), err)
			}
			return
		}
		// Inbound frames carry nothing; mutations arrive over REST.
	}
}

// writePump drains the subscription into the connection. A closed event
// channel means the hub dropped or unsubscribed us; tell the peer and stop.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.sub.Events():
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				log.Printf("subscriber %s: write error: %v", c.sub.ID(), err)
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
