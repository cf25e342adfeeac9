package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryAttributeRepository define el puerto de persistencia para las
// asignaciones atributo-categoría.
type CategoryAttributeRepository interface {
	Create(assignment *entity.CategoryAttribute) error
	GetByID(id string) (*entity.CategoryAttribute, error)
	// GetByPair busca la asignación para un par (categoría, atributo).
	GetByPair(categoryID, attributeID string) (*entity.CategoryAttribute, error)
	// ListForCategory devuelve las asignaciones de una categoría con la
	// definición del Attribute ya cargada (un solo round trip).
	ListForCategory(categoryID string) ([]*entity.CategoryAttribute, error)
	Delete(id string) error
}
