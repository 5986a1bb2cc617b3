package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"msglink/internal/config"
)

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantHSTS bool
	}{
		{"development without tls", &config.Config{Env: "development"}, false},
		{"development with tls", &config.Config{Env: "development", TLSEnabled: true}, true},
		{"production", &config.Config{Env: "production"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(SecurityHeaders(tt.cfg))
			app.Get("/", func(c fiber.Ctx) error {
				return c.SendString("ok")
			})

			req, _ := http.NewRequest("GET", "/", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}

			expected := map[string]string{
				"X-Frame-Options":        "DENY",
				"X-Content-Type-Options": "nosniff",
				"Referrer-Policy":        "no-referrer",
			}
			for header, want := range expected {
				if got := resp.Header.Get(header); got != want {
					t.Errorf("%s = %q, want %q", header, got, want)
				}
			}
			if resp.Header.Get("Content-Security-Policy") == "" {
				t.Error("Content-Security-Policy not set")
			}

			gotHSTS := resp.Header.Get("Strict-Transport-Security") != ""
			if gotHSTS != tt.wantHSTS {
				t.Errorf("HSTS set = %v, want %v", gotHSTS, tt.wantHSTS)
			}
		})
	}
}
