package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/photoflow/photoflow/internal/notify"
)

// respond wraps page or action state in the common envelope, draining any
// pending toast notifications into it.
func respond(c *fiber.Ctx, n *notify.Center, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":          data,
		"notifications": n.Drain(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
