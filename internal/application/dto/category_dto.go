package dto

import "time"

// CreateCategoryRequest entrada para crear o actualizar una categoría
// (la actualización sobreescribe ambos campos).
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
