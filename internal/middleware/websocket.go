package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade guards the /ws routes. Plain HTTP requests get 426 and an
// upgrade without a player id (see EnsurePlayerID) gets 401.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch {
		case !websocket.IsWebSocketUpgrade(c):
			return fiber.ErrUpgradeRequired
		case PlayerID(c) == "":
			log.Debugf("refusing websocket on %s without player id", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "player id is required"})
		}
		return c.Next()
	}
}
