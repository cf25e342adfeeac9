package dto

// AssignAttributeRequest entrada para asignar un atributo a una categoría.
type AssignAttributeRequest struct {
	AttributeID string `json:"attribute_id" validate:"required"`
	IsRequired  bool   `json:"is_required"`
}

// CategoryAttributeResponse salida de una asignación; Attribute viene cargado
// en los listados.
type CategoryAttributeResponse struct {
	ID          string             `json:"id"`
	CategoryID  string             `json:"category_id"`
	AttributeID string             `json:"attribute_id"`
	IsRequired  bool               `json:"is_required"`
	Attribute   *AttributeResponse `json:"attribute,omitempty"`
}
