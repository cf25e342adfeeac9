package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto sin valores de atributo.
type CreateProductRequest struct {
	CategoryID  string          `json:"category_id" validate:"required"`
	Name        string          `json:"name" validate:"required,min=1"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku" validate:"required,min=1"`
}

// ProductAttributeValueInput un valor de atributo dentro de un create/update
// de producto.
type ProductAttributeValueInput struct {
	CategoryAttributeID string `json:"category_attribute_id" validate:"required"`
	Value               string `json:"value" validate:"required,min=1"`
}

// ProductWithValuesRequest entrada para crear o actualizar un producto junto
// con sus valores de atributo. En update los escalares se sobreescriben
// completos y los valores se mezclan por category_attribute_id.
type ProductWithValuesRequest struct {
	CategoryID      string                       `json:"category_id" validate:"required"`
	Name            string                       `json:"name" validate:"required,min=1"`
	Description     string                       `json:"description"`
	Price           decimal.Decimal              `json:"price"`
	SKU             string                       `json:"sku" validate:"required,min=1"`
	AttributeValues []ProductAttributeValueInput `json:"attribute_values"`
}

// ProductResponse salida de un producto (sin valores anidados).
type ProductResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductAttributeValueResponse salida de un valor de atributo persistido.
type ProductAttributeValueResponse struct {
	ID                  string `json:"id"`
	ProductID           string `json:"product_id"`
	CategoryAttributeID string `json:"category_attribute_id"`
	Value               string `json:"value"`
}

// ProductWithValuesResponse producto con sus valores de atributo (GET por ID).
type ProductWithValuesResponse struct {
	ProductResponse
	AttributeValues []ProductAttributeValueResponse `json:"attribute_values"`
}
