package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// businessError mapea cada error de negocio a un status y código propios,
// en vez de colapsar todo en un 400 genérico: el cliente distingue "no
// existe" de "nombre en conflicto" de "referencia inválida".
func businessError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicateName):
		status, code = fiber.StatusConflict, "DUPLICATE_NAME"
	case errors.Is(err, domain.ErrAlreadyDeleted):
		status, code = fiber.StatusConflict, "ALREADY_DELETED"
	case errors.Is(err, domain.ErrNotDeleted):
		status, code = fiber.StatusConflict, "NOT_DELETED"
	case errors.Is(err, domain.ErrHasActiveProducts):
		status, code = fiber.StatusConflict, "HAS_ACTIVE_PRODUCTS"
	case errors.Is(err, domain.ErrCategoryNotFound):
		status, code = fiber.StatusUnprocessableEntity, "CATEGORY_NOT_FOUND"
	case errors.Is(err, domain.ErrCategoryInactive):
		status, code = fiber.StatusUnprocessableEntity, "CATEGORY_INACTIVE"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
