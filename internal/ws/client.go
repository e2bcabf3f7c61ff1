package ws

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/shop"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096 // 4KB

	// Time allowed for one intent, persistence included.
	intentTimeout = 5 * time.Second
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// Buffered channel of outbound messages.
	Send chan []byte

	Storefront *shop.Storefront

	log zerolog.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, f *shop.Storefront) *Client {
	return &Client{
		Hub:        hub,
		Conn:       conn,
		Send:       make(chan []byte, 32),
		Storefront: f,
		log:        hub.log,
	}
}

// ReadPump pumps intents from the websocket connection to the storefront.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Leave(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn().Err(err).Msg("websocket read failed")
			}
			break
		}

		c.handleMessage(message)
	}
}

// WritePump pumps frames from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// one frame per message; renderers parse each frame as a single JSON document
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(message []byte) {
	var intent Intent
	if err := json.Unmarshal(message, &intent); err != nil {
		c.reply(Message{Type: "error", Message: "malformed intent"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), intentTimeout)
	defer cancel()

	_, err := Dispatch(ctx, c.Storefront, intent)
	switch {
	case err == nil:
	case shop.IsPersistence(err):
		c.reply(Message{Type: "warning", Message: err.Error()})
	default:
		c.reply(Message{Type: "error", Message: err.Error()})
	}
}

// reply queues a frame for this client only. Send is owned by the hub, so
// the frame goes through it.
func (c *Client) reply(m Message) {
	frame, err := json.Marshal(m)
	if err != nil {
		c.log.Error().Err(err).Str("type", m.Type).Msg("reply encode failed")
		return
	}
	c.Hub.SendTo(c, frame)
}

// Greet queues the current snapshot so a new renderer draws immediately.
// The client must have joined the hub.
func (c *Client) Greet() {
	c.reply(Message{Type: "snapshot", Data: c.Storefront.Snapshot()})
}
