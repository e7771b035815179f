package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/query"
)

// ProductQueryHandler maneja las consultas HTTP de productos.
type ProductQueryHandler struct {
	svc *query.ProductQueryService
}

// NewProductQueryHandler construye el handler.
func NewProductQueryHandler(svc *query.ProductQueryService) *ProductQueryHandler {
	return &ProductQueryHandler{svc: svc}
}

// List GET /api/products/queries
func (h *ProductQueryHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListDeleted GET /api/products/queries/deleted
func (h *ProductQueryHandler) ListDeleted(c *fiber.Ctx) error {
	out, err := h.svc.ListDeleted(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search GET /api/products/queries/search?name=
func (h *ProductQueryHandler) Search(c *fiber.Ctx) error {
	out, err := h.svc.SearchByName(c.Context(), c.Query("name"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByCategory GET /api/products/queries/by-category/:categoryId
func (h *ProductQueryHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.svc.ListByCategory(c.Context(), c.Params("categoryId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByPriceRange GET /api/products/queries/price-range?min=&max=
func (h *ProductQueryHandler) ListByPriceRange(c *fiber.Ctx) error {
	min, err := decimal.NewFromString(c.Query("min", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min inválido"})
	}
	max, err := decimal.NewFromString(c.Query("max", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max inválido"})
	}
	out, err := h.svc.ListByPriceRange(c.Context(), min, max)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListInStock GET /api/products/queries/in-stock?min=
func (h *ProductQueryHandler) ListInStock(c *fiber.Ctx) error {
	out, err := h.svc.ListInStock(c.Context(), c.QueryInt("min", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListWithStockStatus GET /api/products/queries/with-stock-status
func (h *ProductQueryHandler) ListWithStockStatus(c *fiber.Ctx) error {
	out, err := h.svc.ListWithStockStatus(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID GET /api/products/queries/:id
func (h *ProductQueryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}
