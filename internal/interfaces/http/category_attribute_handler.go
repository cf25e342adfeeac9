package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// CategoryAttributeHandler maneja las asignaciones atributo-categoría.
type CategoryAttributeHandler struct {
	uc *usecase.CategoryAttributeUseCase
}

// NewCategoryAttributeHandler construye el handler.
func NewCategoryAttributeHandler(uc *usecase.CategoryAttributeUseCase) *CategoryAttributeHandler {
	return &CategoryAttributeHandler{uc: uc}
}

// ListForCategory godoc
// @Summary      Listar atributos asignados a una categoría
// @Tags         category-attributes
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {array}  dto.CategoryAttributeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id}/attributes/ [get]
func (h *CategoryAttributeHandler) ListForCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	out, err := h.uc.ListForCategory(categoryID)
	if err != nil {
		return writeDomainError(c, err, "Category not found", "Attribute already assigned")
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar un atributo a una categoría (idempotente)
// @Tags         category-attributes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.AssignAttributeRequest  true  "Asignación"
// @Success      200   {object}  dto.CategoryAttributeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{id}/attributes/ [post]
func (h *CategoryAttributeHandler) Assign(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	var in dto.AssignAttributeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.AttributeID == "" {
		return badRequest(c, "attribute_id is required")
	}
	out, err := h.uc.Assign(categoryID, in)
	if err != nil {
		return writeDomainError(c, err, "Category or attribute not found", "Attribute already assigned")
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar una asignación por ID
// @Tags         category-attributes
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200  {object}  dto.DetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /category-attributes/{id}/ [delete]
func (h *CategoryAttributeHandler) Remove(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Remove(id); err != nil {
		return writeDomainError(c, err, "CategoryAttribute not found", "Attribute already assigned")
	}
	return c.JSON(dto.DetailResponse{Detail: "Category attribute removed"})
}
