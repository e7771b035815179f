package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/command"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// ProductCommandHandler maneja los comandos HTTP de productos.
type ProductCommandHandler struct {
	uc *command.ProductCommandUseCase
}

// NewProductCommandHandler construye el handler.
func NewProductCommandHandler(uc *command.ProductCommandUseCase) *ProductCommandHandler {
	return &ProductCommandHandler{uc: uc}
}

// Create POST /api/products/commands
func (h *ProductCommandHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductCommand
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return businessError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// Update PUT /api/products/commands/:id
func (h *ProductCommandHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ProductCommand
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Delete DELETE /api/products/commands/:id
func (h *ProductCommandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore PUT /api/products/commands/restore/:id
func (h *ProductCommandHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), c.Params("id")); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
