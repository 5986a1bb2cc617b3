package api

import (
	"github.com/gofiber/fiber/v3"
)

// writeEnvelope writes the standard {"status": ...} body. Link responses describe a
// single request, so neither outcome may be cached.
func writeEnvelope(c fiber.Ctx, status int, body fiber.Map) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).JSON(body)
}

func jsonSuccess(c fiber.Ctx, data any) error {
	return writeEnvelope(c, fiber.StatusOK, fiber.Map{"status": "ok", "data": data})
}

// jsonError returns an error envelope with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return writeEnvelope(c, status, fiber.Map{"status": "error", "error": message})
}
