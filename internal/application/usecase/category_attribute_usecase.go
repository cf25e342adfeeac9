package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryAttributeUseCase gestiona las asignaciones atributo-categoría.
// Invariante: a lo sumo una asignación por par (categoría, atributo).
type CategoryAttributeUseCase struct {
	assignments repository.CategoryAttributeRepository
	categories  repository.CategoryRepository
	attributes  repository.AttributeRepository
}

// NewCategoryAttributeUseCase construye el caso de uso con sus puertos.
func NewCategoryAttributeUseCase(
	assignments repository.CategoryAttributeRepository,
	categories repository.CategoryRepository,
	attributes repository.AttributeRepository,
) *CategoryAttributeUseCase {
	return &CategoryAttributeUseCase{
		assignments: assignments,
		categories:  categories,
		attributes:  attributes,
	}
}

// ListForCategory devuelve las asignaciones de una categoría con la definición
// del atributo cargada. Devuelve domain.ErrNotFound si la categoría no existe.
func (uc *CategoryAttributeUseCase) ListForCategory(categoryID string) ([]dto.CategoryAttributeResponse, error) {
	category, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.assignments.ListForCategory(categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryAttributeResponse, 0, len(list))
	for _, ca := range list {
		items = append(items, *toCategoryAttributeResponse(ca))
	}
	return items, nil
}

// Assign asigna un atributo a una categoría de forma idempotente: si el par ya
// existe devuelve la fila existente sin tocar is_required. Una carrera perdida
// en el insert (índice único) se resuelve releyendo el par.
func (uc *CategoryAttributeUseCase) Assign(categoryID string, in dto.AssignAttributeRequest) (*dto.CategoryAttributeResponse, error) {
	category, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	attribute, err := uc.attributes.GetByID(in.AttributeID)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.assignments.GetByPair(categoryID, in.AttributeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Attribute = attribute
		return toCategoryAttributeResponse(existing), nil
	}

	assignment := &entity.CategoryAttribute{
		ID:          uuid.New().String(),
		CategoryID:  categoryID,
		AttributeID: in.AttributeID,
		IsRequired:  in.IsRequired,
		CreatedAt:   time.Now(),
	}
	if err := uc.assignments.Create(assignment); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			existing, err2 := uc.assignments.GetByPair(categoryID, in.AttributeID)
			if err2 != nil {
				return nil, err2
			}
			if existing != nil {
				existing.Attribute = attribute
				return toCategoryAttributeResponse(existing), nil
			}
		}
		return nil, err
	}
	assignment.Attribute = attribute
	return toCategoryAttributeResponse(assignment), nil
}

// Remove elimina una asignación por ID. Devuelve domain.ErrNotFound si no
// existe; los valores de producto que la referencian caen en cascada.
func (uc *CategoryAttributeUseCase) Remove(id string) error {
	return uc.assignments.Delete(id)
}

func toCategoryAttributeResponse(ca *entity.CategoryAttribute) *dto.CategoryAttributeResponse {
	if ca == nil {
		return nil
	}
	return &dto.CategoryAttributeResponse{
		ID:          ca.ID,
		CategoryID:  ca.CategoryID,
		AttributeID: ca.AttributeID,
		IsRequired:  ca.IsRequired,
		Attribute:   toAttributeResponse(ca.Attribute),
	}
}
