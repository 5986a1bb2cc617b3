package middleware

import (
	"github.com/gofiber/fiber/v3"

	"msglink/internal/config"
)

// contentSecurityPolicy allows the inline script and styles of the pages and
// nothing else.
const contentSecurityPolicy = "default-src 'none'; " +
	"script-src 'unsafe-inline'; " +
	"style-src 'unsafe-inline'; " +
	"img-src data:; " +
	"base-uri 'none'; " +
	"form-action 'none'; " +
	"frame-ancestors 'none'"

// SecurityHeaders adds security-related HTTP headers to every response.
func SecurityHeaders(cfg *config.Config) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Set(fiber.HeaderXFrameOptions, "DENY")
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		c.Set(fiber.HeaderReferrerPolicy, "no-referrer")
		c.Set(fiber.HeaderContentSecurityPolicy, contentSecurityPolicy)
		c.Set(fiber.HeaderPermissionsPolicy, "geolocation=(), microphone=(), camera=()")

		// HSTS only when served over TLS by us or in production behind a proxy
		if cfg.TLSEnabled || !cfg.IsDev() {
			c.Set(fiber.HeaderStrictTransportSecurity, "max-age=31536000; includeSubDomains")
		}

		return c.Next()
	}
}
