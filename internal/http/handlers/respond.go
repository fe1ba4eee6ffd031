package handlers

import "github.com/gofiber/fiber/v2"

// jsonError returns a safe, generic error body. Internal error text
// never reaches the client; the caller logs it for operators.
func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// userID pulls the opaque user identifier the auth layer supplies,
// preferring the X-User-ID header over the userId query parameter.
// Empty means anonymous.
func userID(c *fiber.Ctx) string {
	if v := c.Get("X-User-ID"); v != "" {
		return v
	}
	return c.Query("userId")
}
