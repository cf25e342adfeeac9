package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// AttributeHandler maneja las peticiones HTTP para Attribute.
type AttributeHandler struct {
	uc *usecase.AttributeUseCase
}

// NewAttributeHandler construye el handler.
func NewAttributeHandler(uc *usecase.AttributeUseCase) *AttributeHandler {
	return &AttributeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear atributo
// @Tags         attributes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAttributeRequest  true  "Definición del atributo"
// @Success      200   {object}  dto.AttributeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /attributes/ [post]
func (h *AttributeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAttributeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.Name == "" || in.DataType == "" {
		return badRequest(c, "name and data_type are required")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err, "Attribute not found", "Attribute name already exists")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar atributos
// @Tags         attributes
// @Produce      json
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Param        limit  query  int  false  "Límite"          default(100)
// @Success      200    {array}  dto.AttributeResponse
// @Router       /attributes/ [get]
func (h *AttributeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Skip, page.Limit)
	if err != nil {
		return writeDomainError(c, err, "Attribute not found", "Attribute name already exists")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar atributo (reemplazo completo)
// @Tags         attributes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del atributo"
// @Param        body  body  dto.CreateAttributeRequest  true  "Definición del atributo"
// @Success      200   {object}  dto.AttributeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /attributes/{id} [put]
func (h *AttributeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CreateAttributeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.Name == "" || in.DataType == "" {
		return badRequest(c, "name and data_type are required")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err, "Attribute not found", "Attribute name already exists")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar atributo
// @Tags         attributes
// @Produce      json
// @Param        id  path  string  true  "ID del atributo"
// @Success      200  {object}  dto.DetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /attributes/{id} [delete]
func (h *AttributeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return writeDomainError(c, err, "Attribute not found", "Attribute name already exists")
	}
	return c.JSON(dto.DetailResponse{Detail: "Attribute deleted successfully"})
}
