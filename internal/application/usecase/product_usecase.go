package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos y sus valores de atributo.
// El alta de producto con valores corre en una sola transacción: el producto
// y sus valores iniciales se crean juntos o no se crea nada.
type ProductUseCase struct {
	products repository.ProductRepository
	values   repository.ProductAttributeValueRepository
	tx       TxRunner
}

// NewProductUseCase construye el caso de uso. Los repos sueltos atienden las
// lecturas; el TxRunner ata las escrituras multi-tabla a una transacción.
func NewProductUseCase(
	products repository.ProductRepository,
	values repository.ProductAttributeValueRepository,
	tx TxRunner,
) *ProductUseCase {
	return &ProductUseCase{products: products, values: values, tx: tx}
}

// List lista productos con paginación, sin valores anidados.
func (uc *ProductUseCase) List(skip, limit int) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto con sus valores de atributo.
// Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductWithValuesResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	values, err := uc.values.ListForProduct(id)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductWithValuesResponse{
		ProductResponse: *toProductResponse(product),
		AttributeValues: make([]dto.ProductAttributeValueResponse, 0, len(values)),
	}
	for _, v := range values {
		out.AttributeValues = append(out.AttributeValues, toValueResponse(v))
	}
	return out, nil
}

// Create crea un producto y, si vienen, sus valores de atributo iniciales, en
// una sola transacción.
//
// El pre-chequeo de SKU da un mensaje limpio en el caso común; la garantía
// real es el constraint único en el commit, que ante una carrera perdida se
// traduce también a domain.ErrDuplicate. Cada valor debe referenciar una
// asignación existente y de la misma categoría del producto; si no,
// domain.ErrInvalidReference y rollback completo.
func (uc *ProductUseCase) Create(in dto.ProductWithValuesRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.products.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		SKU:         in.SKU,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.tx.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		valueRepo repository.ProductAttributeValueRepository,
		assignmentRepo repository.CategoryAttributeRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for _, v := range in.AttributeValues {
			if err := validateAssignment(assignmentRepo, v.CategoryAttributeID, product.CategoryID); err != nil {
				return err
			}
			value := &entity.ProductAttributeValue{
				ID:                  uuid.New().String(),
				ProductID:           product.ID,
				CategoryAttributeID: v.CategoryAttributeID,
				Value:               v.Value,
				CreatedAt:           now,
			}
			if err := valueRepo.Create(value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update sobreescribe todos los campos escalares y mezcla los valores de
// atributo por category_attribute_id: el que ya existe se sobreescribe en su
// fila, el nuevo se inserta. Los valores almacenados que no vienen en la
// petición se dejan intactos; es una mezcla, no un reemplazo total (contrato
// observado por los clientes actuales).
func (uc *ProductUseCase) Update(id string, in dto.ProductWithValuesRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	// Revalidar unicidad de SKU solo cuando cambia.
	if in.SKU != product.SKU {
		other, err := uc.products.GetBySKU(in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
	}

	product.CategoryID = in.CategoryID
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price.Round(2)
	product.SKU = in.SKU
	product.UpdatedAt = time.Now()

	err = uc.tx.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		valueRepo repository.ProductAttributeValueRepository,
		assignmentRepo repository.CategoryAttributeRepository,
	) error {
		if err := productRepo.Update(product); err != nil {
			return err
		}

		existing, err := valueRepo.ListForProduct(id)
		if err != nil {
			return err
		}
		byAssignment := make(map[string]*entity.ProductAttributeValue, len(existing))
		for _, v := range existing {
			byAssignment[v.CategoryAttributeID] = v
		}

		for _, v := range in.AttributeValues {
			if current, ok := byAssignment[v.CategoryAttributeID]; ok {
				if err := valueRepo.UpdateValue(current.ID, v.Value); err != nil {
					return err
				}
				continue
			}
			if err := validateAssignment(assignmentRepo, v.CategoryAttributeID, product.CategoryID); err != nil {
				return err
			}
			value := &entity.ProductAttributeValue{
				ID:                  uuid.New().String(),
				ProductID:           id,
				CategoryAttributeID: v.CategoryAttributeID,
				Value:               v.Value,
				CreatedAt:           time.Now(),
			}
			if err := valueRepo.Create(value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// validateAssignment rechaza con domain.ErrInvalidReference una asignación
// inexistente o de otra categoría. El esquema solo garantiza la FK; la regla
// de pertenencia a la categoría del producto se valida aquí.
func validateAssignment(assignments repository.CategoryAttributeRepository, assignmentID, categoryID string) error {
	assignment, err := assignments.GetByID(assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil || assignment.CategoryID != categoryID {
		return domain.ErrInvalidReference
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SKU:         p.SKU,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toValueResponse(v *entity.ProductAttributeValue) dto.ProductAttributeValueResponse {
	return dto.ProductAttributeValueResponse{
		ID:                  v.ID,
		ProductID:           v.ProductID,
		CategoryAttributeID: v.CategoryAttributeID,
		Value:               v.Value,
	}
}
