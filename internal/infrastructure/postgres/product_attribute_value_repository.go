package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Asegura que ProductAttributeValueRepo implementa el puerto.
var _ repository.ProductAttributeValueRepository = (*ProductAttributeValueRepo)(nil)

// ProductAttributeValueRepo implementación del puerto sobre PostgreSQL (usable con pool o tx).
type ProductAttributeValueRepo struct {
	q Querier
}

// NewProductAttributeValueRepository construye el adaptador para valores de atributo. Pasar pool o tx (Querier).
func NewProductAttributeValueRepository(q Querier) *ProductAttributeValueRepo {
	return &ProductAttributeValueRepo{q: q}
}

// Create persiste un valor de atributo. Una FK colgante (asignación o producto
// inexistente) se traduce a domain.ErrInvalidReference.
func (r *ProductAttributeValueRepo) Create(value *entity.ProductAttributeValue) error {
	query := `
		INSERT INTO product_attribute_values (id, product_id, category_attribute_id, value, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		value.ID, value.ProductID, value.CategoryAttributeID, value.Value, value.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert product attribute value: %w", err)
	}
	return nil
}

// ListForProduct devuelve los valores de atributo de un producto.
func (r *ProductAttributeValueRepo) ListForProduct(productID string) ([]*entity.ProductAttributeValue, error) {
	query := `
		SELECT id, product_id, category_attribute_id, value, created_at
		FROM product_attribute_values WHERE product_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product attribute values: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductAttributeValue
	for rows.Next() {
		var v entity.ProductAttributeValue
		if err := rows.Scan(&v.ID, &v.ProductID, &v.CategoryAttributeID, &v.Value, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product attribute value: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// UpdateValue sobreescribe el valor de una fila existente.
func (r *ProductAttributeValueRepo) UpdateValue(id, value string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE product_attribute_values SET value = $2 WHERE id = $1`,
		id, value,
	)
	if err != nil {
		return fmt.Errorf("update product attribute value: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
