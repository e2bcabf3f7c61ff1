package handlers

import (
	"storefront/internal/shop"
	"storefront/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// SocketHandler connects renderers to the snapshot hub.
type SocketHandler struct {
	Hub        *ws.Hub
	Storefront *shop.Storefront
}

func NewSocketHandler(hub *ws.Hub, f *shop.Storefront) *SocketHandler {
	return &SocketHandler{Hub: hub, Storefront: f}
}

// WebSocketUpgradeMiddleware ensures the client is trying to upgrade to WebSocket
func (h *SocketHandler) WebSocketUpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("allowed", true)
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler - GET /ws
func (h *SocketHandler) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		client := ws.NewClient(h.Hub, c, h.Storefront)
		if !client.Hub.Join(client) {
			c.Close()
			return
		}
		client.Greet()

		// Start Pumps
		go client.WritePump()
		client.ReadPump()
	})
}
