package handlers

import (
	"github.com/gofiber/fiber/v3"

	"msglink/internal/config"
)

// MergeBranding adds site-wide template fields to a fiber.Map.
func MergeBranding(data fiber.Map, cfg *config.Config, pages *config.PageConfig) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["Lang"] = pages.Lang
	return data
}
