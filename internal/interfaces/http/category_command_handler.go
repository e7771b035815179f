package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/command"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// CategoryCommandHandler maneja los comandos HTTP de categorías.
type CategoryCommandHandler struct {
	uc *command.CategoryCommandUseCase
}

// NewCategoryCommandHandler construye el handler.
func NewCategoryCommandHandler(uc *command.CategoryCommandUseCase) *CategoryCommandHandler {
	return &CategoryCommandHandler{uc: uc}
}

// Create POST /api/categories/commands
func (h *CategoryCommandHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryCommand
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

// Update PUT /api/categories/commands/:id
func (h *CategoryCommandHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CategoryCommand
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

// Delete DELETE /api/categories/commands/:id
func (h *CategoryCommandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore PUT /api/categories/commands/restore/:id
func (h *CategoryCommandHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), c.Params("id")); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
