package api

import (
	"github.com/gofiber/fiber/v3"

	"msglink/internal/config"
	"msglink/internal/deeplink"
	"msglink/internal/handlers"
	"msglink/internal/metrics"
	"msglink/internal/useragent"
	"msglink/internal/validation"
)

// LinkResponse describes a resolved deep link.
type LinkResponse struct {
	Recipient string `json:"recipient"`
	Body      string `json:"body,omitempty"`
	Link      string `json:"link"`
	Apple     bool   `json:"apple"`
}

// LinkHandler handles deep link resolution via JSON API.
type LinkHandler struct {
	cfg *config.Config
}

// NewLinkHandler creates a new API link handler.
func NewLinkHandler(cfg *config.Config) *LinkHandler {
	return &LinkHandler{cfg: cfg}
}

// Resolve builds the deep link for the request without rendering a page.
// It accepts the same inputs as the page endpoint.
func (h *LinkHandler) Resolve(c fiber.Ctx) error {
	recipient, err := validation.ResolveRecipient(c.Query("id"), h.cfg.DefaultID)
	if err != nil {
		metrics.RecordOutcome(metrics.OutcomeMissingRecipient)
		return jsonError(c, fiber.StatusBadRequest, "missing recipient: pass ?id= or set DEFAULT_ID")
	}

	body := handlers.MessageBody(c)
	metrics.RecordOutcome(metrics.OutcomeAPI)

	return jsonSuccess(c, LinkResponse{
		Recipient: recipient,
		Body:      body,
		Link:      deeplink.Build(recipient, body),
		Apple:     useragent.IsApple(c.Get(fiber.HeaderUserAgent)),
	})
}
