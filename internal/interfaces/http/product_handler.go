package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto (sin valores de atributo)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /products/ [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.SKU == "" || in.Name == "" || in.CategoryID == "" {
		return badRequest(c, "sku, name and category_id are required")
	}
	out, err := h.uc.Create(dto.ProductWithValuesRequest{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		SKU:         in.SKU,
	})
	if err != nil {
		return writeDomainError(c, err, "Category not found", "SKU already exists")
	}
	return c.JSON(out)
}

// CreateFull godoc
// @Summary      Crear producto con sus valores de atributo anidados
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductWithValuesRequest  true  "Producto y valores"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /products/full/ [post]
func (h *ProductHandler) CreateFull(c *fiber.Ctx) error {
	var in dto.ProductWithValuesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.SKU == "" || in.Name == "" || in.CategoryID == "" {
		return badRequest(c, "sku, name and category_id are required")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err, "Category not found", "SKU already exists")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos (sin valores anidados)
// @Tags         products
// @Produce      json
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Param        limit  query  int  false  "Límite"          default(100)
// @Success      200    {array}  dto.ProductResponse
// @Router       /products/ [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "Invalid pagination parameters")
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Skip, page.Limit)
	if err != nil {
		return writeDomainError(c, err, "Product not found", "SKU already exists")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID con sus valores de atributo
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductWithValuesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err, "Product not found", "SKU already exists")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto y mezclar sus valores de atributo
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductWithValuesRequest  true  "Producto y valores"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ProductWithValuesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if in.SKU == "" || in.Name == "" || in.CategoryID == "" {
		return badRequest(c, "sku, name and category_id are required")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err, "Product not found", "SKU already exists")
	}
	return c.JSON(out)
}
