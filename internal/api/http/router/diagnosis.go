package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/yosapark/yomogi_backend/internal/api/http/handler"
)

func (r *Router) registerDiagnosisRoutes(api fiber.Router, h *handler.DiagnosisHandler) {
	g := api.Group("/diagnosis")
	g.Get("/questions", h.Questions)
	g.Post("/", h.Submit)
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
}
