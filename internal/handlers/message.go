package handlers

import (
	"html"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"msglink/internal/config"
	"msglink/internal/deeplink"
	"msglink/internal/metrics"
	"msglink/internal/qr"
	"msglink/internal/useragent"
	"msglink/internal/validation"
)

// MissingRecipientMessage is returned with a 400 when no recipient is known.
const MissingRecipientMessage = "missing recipient: pass ?id=<Apple ID email or phone number> in the URL, " +
	"or set DEFAULT_ID to configure a default account.\n"

// MessageHandler turns a request into an iMessage deep link and serves either
// a redirect page (Apple devices) or a QR code page (everything else).
type MessageHandler struct {
	cfg    *config.Config
	pages  *config.PageConfig
	encode qr.Encoder
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(cfg *config.Config, pages *config.PageConfig, encode qr.Encoder) *MessageHandler {
	return &MessageHandler{cfg: cfg, pages: pages, encode: encode}
}

// Handle resolves the recipient and message, then renders the page that fits
// the client.
func (h *MessageHandler) Handle(c fiber.Ctx) error {
	recipient, err := validation.ResolveRecipient(c.Query("id"), h.cfg.DefaultID)
	if err != nil {
		metrics.RecordOutcome(metrics.OutcomeMissingRecipient)
		return plainError(c, fiber.StatusBadRequest, MissingRecipientMessage)
	}

	body := MessageBody(c)
	link := deeplink.Build(recipient, body)
	noStore(c)

	if useragent.IsApple(c.Get(fiber.HeaderUserAgent)) {
		metrics.RecordOutcome(metrics.OutcomeRedirect)
		slog.Debug("serving redirect page", "has_body", body != "")
		return c.Render("redirect", MergeBranding(fiber.Map{
			"Page":     h.pages.Redirect,
			"Link":     template.URL(link),
			"LinkAttr": hrefAttr(link),
		}, h.cfg, h.pages))
	}

	svg, err := h.encode(link, qr.DefaultOptions())
	if err != nil {
		metrics.RecordOutcome(metrics.OutcomeQRError)
		slog.Error("failed to generate qr code", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate QR code")
	}

	metrics.RecordOutcome(metrics.OutcomeQR)
	slog.Debug("serving qr page", "has_body", body != "")
	return c.Render("qr", MergeBranding(fiber.Map{
		"Page": h.pages.QR,
		"SVG":  template.HTML(svg),
	}, h.cfg, h.pages))
}

// hrefAttr renders the fallback anchor's href HTML-escaped only, so it matches
// the meta refresh URL byte for byte.
func hrefAttr(link string) template.HTMLAttr {
	return template.HTMLAttr(`href="` + html.EscapeString(link) + `"`)
}
