package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/yosapark/yomogi_backend/internal/api/http/handler"
)

func (r *Router) registerCatalogRoutes(api fiber.Router, h *handler.CatalogHandler) {
	api.Get("/body-types", h.ListBodyTypes)
	api.Get("/body-types/:key", h.GetBodyType)

	api.Get("/blends", h.ListBlends)
	api.Get("/blends/:key", h.GetBlend)

	menu := api.Group("/menu")
	menu.Get("/", h.ListMenu)
	menu.Get("/recommendations/:bodyType", h.Recommend)
	menu.Get("/:id", h.GetMenuItem)
}
