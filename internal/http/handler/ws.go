package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// UpgradeWS - hanya request websocket yang diteruskan ke Events
func UpgradeWS(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Events - GET /ws, stream event absensi untuk layar pemantau
func (h *Handler) Events(c *websocket.Conn) {
	if h.hub == nil {
		c.Close()
		return
	}

	h.hub.Register(c)
	defer h.hub.Unregister(c)

	// listen client
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
