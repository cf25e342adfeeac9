package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AttributeUseCase casos de uso CRUD para definiciones de atributo.
// DataType y EnumValues se guardan tal cual llegan.
type AttributeUseCase struct {
	repo repository.AttributeRepository
}

// NewAttributeUseCase construye el caso de uso con el puerto de persistencia.
func NewAttributeUseCase(repo repository.AttributeRepository) *AttributeUseCase {
	return &AttributeUseCase{repo: repo}
}

// Create crea un nuevo atributo. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (uc *AttributeUseCase) Create(in dto.CreateAttributeRequest) (*dto.AttributeResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	attribute := &entity.Attribute{
		ID:         uuid.New().String(),
		Name:       in.Name,
		DataType:   in.DataType,
		EnumValues: in.EnumValues,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(attribute); err != nil {
		return nil, err
	}
	return toAttributeResponse(attribute), nil
}

// GetByID obtiene un atributo por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *AttributeUseCase) GetByID(id string) (*dto.AttributeResponse, error) {
	attribute, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, domain.ErrNotFound
	}
	return toAttributeResponse(attribute), nil
}

// List lista atributos con paginación.
func (uc *AttributeUseCase) List(skip, limit int) ([]dto.AttributeResponse, error) {
	list, err := uc.repo.List(limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttributeResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAttributeResponse(a))
	}
	return items, nil
}

// Update sobreescribe nombre, tipo y enum_values (reemplazo completo).
func (uc *AttributeUseCase) Update(id string, in dto.CreateAttributeRequest) (*dto.AttributeResponse, error) {
	attribute, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return nil, domain.ErrNotFound
	}
	attribute.Name = in.Name
	attribute.DataType = in.DataType
	attribute.EnumValues = in.EnumValues
	attribute.UpdatedAt = time.Now()
	if err := uc.repo.Update(attribute); err != nil {
		return nil, err
	}
	return toAttributeResponse(attribute), nil
}

// Delete elimina un atributo. Devuelve domain.ErrNotFound si no existe.
func (uc *AttributeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAttributeResponse(a *entity.Attribute) *dto.AttributeResponse {
	if a == nil {
		return nil
	}
	return &dto.AttributeResponse{
		ID:         a.ID,
		Name:       a.Name,
		DataType:   a.DataType,
		EnumValues: a.EnumValues,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
