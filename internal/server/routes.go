package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"msglink/internal/handlers"
	"msglink/internal/handlers/api"
	"msglink/internal/qr"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(encode qr.Encoder) {
	// Initialize handlers
	probeHandler := handlers.NewProbeHandler(encode)
	messageHandler := handlers.NewMessageHandler(s.Cfg, s.Pages, encode)
	apiLinkHandler := api.NewLinkHandler(s.Cfg)

	// Operational routes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	s.App.All("/api/link", apiLinkHandler.Resolve)

	// Deep link route - must be last (catch-all, any method)
	s.App.All("/", messageHandler.Handle)
	s.App.All("/*", messageHandler.Handle)
}
