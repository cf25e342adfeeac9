package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// writeDomainError traduce errores de dominio al contrato HTTP de forma
// uniforme: 404 recurso ausente, 409 conflicto de unicidad o uso, 400
// referencia de atributo inválida. Los mensajes notFound/conflict los pone
// cada handler según su entidad; el resto es fijo.
func writeDomainError(c *fiber.Ctx, err error, notFoundMsg, conflictMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: notFoundMsg})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Detail: conflictMsg})
	case errors.Is(err, domain.ErrCategoryInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Detail: "Category has associated products"})
	case errors.Is(err, domain.ErrInvalidReference):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid attribute assignment"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Invalid input"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
	}
}

// badRequest respuesta 400 con detalle.
func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: detail})
}
