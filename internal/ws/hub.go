package ws

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"storefront/internal/logging"
	"storefront/internal/shop"

	"github.com/rs/zerolog"
)

// Message is the envelope of every frame the server sends.
type Message struct {
	Type    string      `json:"type"` // 'snapshot', 'warning', 'error'
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type directFrame struct {
	client *Client
	frame  []byte
}

// Hub maintains the set of active clients and broadcasts snapshots to them.
type Hub struct {
	// Registered clients. Owned by Run.
	clients map[*Client]bool

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Outbound frames for every client.
	Broadcast chan []byte

	// Outbound frames for a single client.
	direct chan directFrame

	done   chan struct{}
	online atomic.Int64
	log    zerolog.Logger
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte, 16),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		direct:     make(chan directFrame),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
		log:        logging.Component("ws"),
	}
}

// Run serves registrations and broadcasts until ctx ends, then closes every
// client's Send channel.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for client := range h.clients {
			h.drop(client)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.Register:
			h.clients[client] = true
			h.online.Add(1)
			h.log.Debug().Int64("online", h.online.Load()).Msg("renderer connected")
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.log.Debug().Int64("online", h.online.Load()).Msg("renderer disconnected")
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				h.deliver(client, message)
			}
		case d := <-h.direct:
			if h.clients[d.client] {
				h.deliver(d.client, d.frame)
			}
		}
	}
}

func (h *Hub) deliver(client *Client, frame []byte) {
	select {
	case client.Send <- frame:
	default:
		// too slow to keep up; it reconnects and gets a fresh snapshot
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.Send)
	h.online.Add(-1)
}

// Join registers client. It reports false once the hub has stopped.
func (h *Hub) Join(client *Client) bool {
	select {
	case h.Register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Leave(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

// SendTo queues frame for one registered client.
func (h *Hub) SendTo(client *Client, frame []byte) {
	select {
	case h.direct <- directFrame{client: client, frame: frame}:
	case <-h.done:
	}
}

// Online is the number of connected renderers.
func (h *Hub) Online() int {
	return int(h.online.Load())
}

// Publish implements shop.Publisher.
func (h *Hub) Publish(snap shop.Snapshot) {
	frame, err := json.Marshal(Message{Type: "snapshot", Data: snap})
	if err != nil {
		h.log.Error().Err(err).Msg("snapshot encode failed")
		return
	}
	select {
	case h.Broadcast <- frame:
	case <-h.done:
	}
}
