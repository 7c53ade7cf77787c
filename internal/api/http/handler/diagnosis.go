package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/yosapark/yomogi_backend/internal/service/catalog"
	"github.com/yosapark/yomogi_backend/internal/service/diagnosis"
)

type DiagnosisHandler struct {
	svc     diagnosis.Service
	catalog catalog.Service
}

func NewDiagnosisHandler(svc diagnosis.Service, cat catalog.Service) *DiagnosisHandler {
	return &DiagnosisHandler{svc: svc, catalog: cat}
}

func (h *DiagnosisHandler) Questions(c fiber.Ctx) error {
	return ok(c, h.svc.Questions(c.Context()))
}

type submitDiagnosisRequest struct {
	Answers map[string]string `json:"answers"`
	UserID  string            `json:"user_id"`
}

type diagnosisResponse struct {
	diagnosis.Outcome
	Blend          *catalog.Blend          `json:"blend,omitempty"`
	Recommendation *catalog.Recommendation `json:"menu_recommendation,omitempty"`
}

func (h *DiagnosisHandler) Submit(c fiber.Ctx) error {
	var req submitDiagnosisRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	out := h.svc.Submit(c.Context(), diagnosis.SubmitRequest{Answers: req.Answers, UserID: req.UserID})

	resp := diagnosisResponse{Outcome: out}
	if b, err := h.catalog.BlendForBodyType(c.Context(), out.BodyType); err == nil {
		resp.Blend = &b
	}
	if rec, err := h.catalog.Recommend(c.Context(), out.BodyType); err == nil {
		resp.Recommendation = &rec
	}
	return ok(c, resp)
}

func (h *DiagnosisHandler) List(c fiber.Ctx) error {
	items, err := h.svc.List(c.Context(), diagnosis.ListRequest{
		UserID:   c.Query("user_id"),
		BodyType: c.Query("body_type"),
		Limit:    fiber.Query[int](c, "limit"),
	})
	if err != nil {
		return mapDiagnosisError(c, err)
	}
	return ok(c, items)
}

func (h *DiagnosisHandler) Get(c fiber.Ctx) error {
	d, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapDiagnosisError(c, err)
	}
	return ok(c, d)
}

func mapDiagnosisError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, diagnosis.ErrNotFound), errors.Is(err, diagnosis.ErrInvalidID):
		return notFound(c, diagnosis.ErrNotFound.Error())
	default:
		return internalError(c)
	}
}
