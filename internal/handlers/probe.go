package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"msglink/internal/qr"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	encode qr.Encoder
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(encode qr.Encoder) *ProbeHandler {
	return &ProbeHandler{encode: encode}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the QR encoder can render a code.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if _, err := h.encode("imessage:readyz", qr.DefaultOptions()); err != nil {
		slog.Error("readiness probe failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "qr encoder unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
