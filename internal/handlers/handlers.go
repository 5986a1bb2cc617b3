package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// plainError returns a text/plain response with the given status.
// Used for errors that callers are expected to read in a terminal or log.
func plainError(c fiber.Ctx, status int, message string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(message)
}

// noStore marks the response as not cacheable.
func noStore(c fiber.Ctx) {
	c.Set(fiber.HeaderCacheControl, "no-store")
}
