package http

import "github.com/gofiber/fiber/v2"

// requestUser identifica al operador que ejecuta la acción. Viene del header
// X-User-ID; vacío si el cliente no lo envía.
func requestUser(c *fiber.Ctx) string {
	return c.Get("X-User-ID")
}
