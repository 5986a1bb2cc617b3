package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"msglink/internal/validation"
)

// bodySource is one attempt at finding the message text. decided reports
// whether the attempt settled the message; text may still be empty then.
type bodySource func(c fiber.Ctx) (text string, decided bool)

// bodySources are tried in order; the first decided attempt wins.
var bodySources = []bodySource{
	bodyFromQuery,
	bodyFromJSON,
	bodyFromText,
}

// MessageBody resolves the optional message. Failures are never surfaced; the
// link is simply built without a body.
func MessageBody(c fiber.Ctx) string {
	for _, source := range bodySources {
		if text, decided := source(c); decided {
			return text
		}
	}
	return ""
}

func bodyFromQuery(c fiber.Ctx) (string, bool) {
	return validation.NormalizeText(c.Query("body"))
}

// bodyFromJSON reads a string "body" field from a JSON payload. A blank string
// field settles the message as empty; anything else that is not a string
// falls through.
func bodyFromJSON(c fiber.Ctx) (string, bool) {
	if !hasPayload(c) || !isJSON(c.Get(fiber.HeaderContentType)) {
		return "", false
	}

	var payload struct {
		Body any `json:"body"`
	}
	if err := c.App().Config().JSONDecoder(c.Body(), &payload); err != nil {
		slog.Debug("ignoring malformed json payload", "error", err)
		return "", false
	}

	text, ok := payload.Body.(string)
	if !ok {
		return "", false
	}
	text, _ = validation.NormalizeText(text)
	return text, true
}

func bodyFromText(c fiber.Ctx) (string, bool) {
	if !hasPayload(c) {
		return "", false
	}
	text, _ := validation.NormalizeText(string(c.Body()))
	return text, true
}

// hasPayload reports whether the method is one that carries a message payload.
func hasPayload(c fiber.Ctx) bool {
	switch c.Method() {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		return true
	}
	return false
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), fiber.MIMEApplicationJSON)
}
