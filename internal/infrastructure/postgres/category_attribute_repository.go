package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Asegura que CategoryAttributeRepo implementa el puerto.
var _ repository.CategoryAttributeRepository = (*CategoryAttributeRepo)(nil)

// CategoryAttributeRepo implementación del puerto CategoryAttributeRepository
// sobre PostgreSQL (usable con pool o tx).
type CategoryAttributeRepo struct {
	q Querier
}

// NewCategoryAttributeRepository construye el adaptador para asignaciones. Pasar pool o tx (Querier).
func NewCategoryAttributeRepository(q Querier) *CategoryAttributeRepo {
	return &CategoryAttributeRepo{q: q}
}

// Create persiste una asignación. El índice único sobre (category_id, attribute_id)
// hace que un duplicado devuelva domain.ErrDuplicate; el caso de uso relee la
// fila existente en ese caso.
func (r *CategoryAttributeRepo) Create(assignment *entity.CategoryAttribute) error {
	query := `
		INSERT INTO category_attributes (id, category_id, attribute_id, is_required, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		assignment.ID, assignment.CategoryID, assignment.AttributeID,
		assignment.IsRequired, assignment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert category attribute: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *CategoryAttributeRepo) GetByID(id string) (*entity.CategoryAttribute, error) {
	query := `
		SELECT id, category_id, attribute_id, is_required, created_at
		FROM category_attributes WHERE id = $1`
	var ca entity.CategoryAttribute
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ca.ID, &ca.CategoryID, &ca.AttributeID, &ca.IsRequired, &ca.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category attribute: %w", err)
	}
	return &ca, nil
}

// GetByPair busca la asignación para un par (categoría, atributo).
func (r *CategoryAttributeRepo) GetByPair(categoryID, attributeID string) (*entity.CategoryAttribute, error) {
	query := `
		SELECT id, category_id, attribute_id, is_required, created_at
		FROM category_attributes WHERE category_id = $1 AND attribute_id = $2`
	var ca entity.CategoryAttribute
	err := r.q.QueryRow(context.Background(), query, categoryID, attributeID).Scan(
		&ca.ID, &ca.CategoryID, &ca.AttributeID, &ca.IsRequired, &ca.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category attribute by pair: %w", err)
	}
	return &ca, nil
}

// ListForCategory devuelve las asignaciones de una categoría con la definición
// del Attribute cargada en la misma consulta (join).
func (r *CategoryAttributeRepo) ListForCategory(categoryID string) ([]*entity.CategoryAttribute, error) {
	query := `
		SELECT ca.id, ca.category_id, ca.attribute_id, ca.is_required, ca.created_at,
		       a.id, a.name, a.data_type, a.enum_values, a.created_at, a.updated_at
		FROM category_attributes ca
		JOIN attributes a ON a.id = ca.attribute_id
		WHERE ca.category_id = $1
		ORDER BY ca.created_at, ca.id`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list category attributes: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoryAttribute
	for rows.Next() {
		var ca entity.CategoryAttribute
		var a entity.Attribute
		if err := rows.Scan(
			&ca.ID, &ca.CategoryID, &ca.AttributeID, &ca.IsRequired, &ca.CreatedAt,
			&a.ID, &a.Name, &a.DataType, &a.EnumValues, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan category attribute: %w", err)
		}
		ca.Attribute = &a
		list = append(list, &ca)
	}
	return list, rows.Err()
}

// Delete elimina una asignación por ID; los valores que la referencian caen en cascada.
func (r *CategoryAttributeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM category_attributes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category attribute: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
