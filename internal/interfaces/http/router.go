package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC          *usecase.CategoryUseCase
	AttributeUC         *usecase.AttributeUseCase
	CategoryAttributeUC *usecase.CategoryAttributeUseCase
	ProductUC           *usecase.ProductUseCase
}

// Router registra las rutas de la API. Las rutas (método y path, con barra
// final incluida) son el contrato con los clientes existentes.
func Router(app *fiber.App, deps RouterDeps) {
	// Categories
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Category attributes (anidado bajo categories + borrado por ID propio)
	caHandler := NewCategoryAttributeHandler(deps.CategoryAttributeUC)
	categories.Get("/:id/attributes/", caHandler.ListForCategory)
	categories.Post("/:id/attributes/", caHandler.Assign)
	app.Delete("/category-attributes/:id/", caHandler.Remove)

	// Attributes
	attributes := app.Group("/attributes")
	attributeHandler := NewAttributeHandler(deps.AttributeUC)
	attributes.Post("/", attributeHandler.Create)
	attributes.Get("/", attributeHandler.List)
	attributes.Put("/:id", attributeHandler.Update)
	attributes.Delete("/:id", attributeHandler.Delete)

	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Post("/full/", productHandler.CreateFull)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
}
