package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/yosapark/yomogi_backend/internal/api/http/handler"
)

func (r *Router) registerReservationRoutes(api fiber.Router, h *handler.ReservationHandler) {
	g := api.Group("/reservations")
	g.Post("/", h.Book)
	g.Get("/", h.List)
	g.Get("/slots", h.Slots)
	g.Patch("/:id/status", h.UpdateStatus)
}
