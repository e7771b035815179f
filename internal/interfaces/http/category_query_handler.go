package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/query"
)

// CategoryQueryHandler maneja las consultas HTTP de categorías.
// La ausencia en una consulta no es excepcional: 404 con cuerpo de error
// solo en el lookup individual, listas vacías en el resto.
type CategoryQueryHandler struct {
	svc *query.CategoryQueryService
}

// NewCategoryQueryHandler construye el handler.
func NewCategoryQueryHandler(svc *query.CategoryQueryService) *CategoryQueryHandler {
	return &CategoryQueryHandler{svc: svc}
}

// List GET /api/categories/queries
func (h *CategoryQueryHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListDeleted GET /api/categories/queries/deleted
func (h *CategoryQueryHandler) ListDeleted(c *fiber.Ctx) error {
	out, err := h.svc.ListDeleted(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search GET /api/categories/queries/search?name=
func (h *CategoryQueryHandler) Search(c *fiber.Ctx) error {
	out, err := h.svc.SearchByName(c.Context(), c.Query("name"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListWithCounts GET /api/categories/queries/with-counts
func (h *CategoryQueryHandler) ListWithCounts(c *fiber.Ctx) error {
	out, err := h.svc.ListWithCounts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID GET /api/categories/queries/:id
func (h *CategoryQueryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(out)
}
