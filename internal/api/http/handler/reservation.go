package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/yosapark/yomogi_backend/internal/service/reservation"
)

type ReservationHandler struct {
	svc reservation.Service
}

func NewReservationHandler(svc reservation.Service) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) Book(c fiber.Ctx) error {
	var req reservation.BookRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Book(c.Context(), req)
	if err != nil {
		return mapReservationError(c, err)
	}
	return created(c, fiber.Map{
		"reservation_id": r.ID,
		"message":        "予約が完了しました",
		"reservation":    r,
	})
}

func (h *ReservationHandler) List(c fiber.Ctx) error {
	items, err := h.svc.List(c.Context(), reservation.ListRequest{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	})
	if err != nil {
		return mapReservationError(c, err)
	}
	return ok(c, items)
}

func (h *ReservationHandler) Slots(c fiber.Ctx) error {
	date := c.Query("date")
	slots, err := h.svc.Slots(c.Context(), date)
	if err != nil {
		return mapReservationError(c, err)
	}
	return ok(c, fiber.Map{"date": date, "slots": slots})
}

type updateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

func (h *ReservationHandler) UpdateStatus(c fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return mapReservationError(c, err)
	}
	return ok(c, r)
}

func mapReservationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reservation.ErrInvalidInput),
		errors.Is(err, reservation.ErrInvalidDate),
		errors.Is(err, reservation.ErrInvalidTime),
		errors.Is(err, reservation.ErrUnknownBlend),
		errors.Is(err, reservation.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, reservation.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, reservation.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
