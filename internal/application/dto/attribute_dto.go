package dto

import "time"

// CreateAttributeRequest entrada para crear o actualizar un atributo.
// DataType y EnumValues son opacos: no se validan contra un conjunto cerrado.
type CreateAttributeRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	DataType   string `json:"data_type" validate:"required,min=1"`
	EnumValues string `json:"enum_values"`
}

// AttributeResponse salida de un atributo.
type AttributeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DataType   string    `json:"data_type"`
	EnumValues string    `json:"enum_values"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
