package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/yosapark/yomogi_backend/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit accepts JSON or form-encoded bodies.
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req contact.CreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.Submit(c.Context(), req)
	if err != nil {
		return mapContactError(c, err)
	}
	return created(c, fiber.Map{
		"id":      msg.ID,
		"message": "お問い合わせを受け付けました",
	})
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	items, err := h.svc.List(c.Context(), contact.ListRequest{
		Status: c.Query("status"),
		Limit:  fiber.Query[int](c, "limit"),
	})
	if err != nil {
		return mapContactError(c, err)
	}
	return ok(c, items)
}

func mapContactError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, contact.ErrInvalidInput):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
