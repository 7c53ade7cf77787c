package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/yosapark/yomogi_backend/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListBodyTypes(c fiber.Ctx) error {
	return ok(c, h.svc.ListBodyTypes(c.Context()))
}

func (h *CatalogHandler) GetBodyType(c fiber.Ctx) error {
	bt, err := h.svc.GetBodyType(c.Context(), c.Params("key"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, bt)
}

func (h *CatalogHandler) ListBlends(c fiber.Ctx) error {
	return ok(c, h.svc.ListBlends(c.Context()))
}

func (h *CatalogHandler) GetBlend(c fiber.Ctx) error {
	b, err := h.svc.GetBlend(c.Context(), c.Params("key"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, b)
}

func (h *CatalogHandler) ListMenu(c fiber.Ctx) error {
	return ok(c, h.svc.ListMenu(c.Context(), catalog.MenuFilter{
		Tag:     c.Query("tag"),
		Popular: fiber.Query[bool](c, "popular"),
		New:     fiber.Query[bool](c, "new"),
		Limited: fiber.Query[bool](c, "limited"),
	}))
}

func (h *CatalogHandler) GetMenuItem(c fiber.Ctx) error {
	item, err := h.svc.GetMenuItem(c.Context(), c.Params("id"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, item)
}

func (h *CatalogHandler) Recommend(c fiber.Ctx) error {
	rec, err := h.svc.Recommend(c.Context(), c.Params("bodyType"))
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, rec)
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrBodyTypeNotFound),
		errors.Is(err, catalog.ErrBlendNotFound),
		errors.Is(err, catalog.ErrMenuItemNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
