package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Asegura que AttributeRepo implementa repository.AttributeRepository.
var _ repository.AttributeRepository = (*AttributeRepo)(nil)

// AttributeRepo implementación del puerto AttributeRepository sobre PostgreSQL (usable con pool o tx).
type AttributeRepo struct {
	q Querier
}

// NewAttributeRepository construye el adaptador de persistencia para atributos. Pasar pool o tx (Querier).
func NewAttributeRepository(q Querier) *AttributeRepo {
	return &AttributeRepo{q: q}
}

// Create persiste un nuevo atributo. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (r *AttributeRepo) Create(attribute *entity.Attribute) error {
	query := `
		INSERT INTO attributes (id, name, data_type, enum_values, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		attribute.ID, attribute.Name, attribute.DataType, attribute.EnumValues,
		attribute.CreatedAt, attribute.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert attribute: %w", err)
	}
	return nil
}

// GetByID obtiene un atributo por ID.
func (r *AttributeRepo) GetByID(id string) (*entity.Attribute, error) {
	query := `
		SELECT id, name, data_type, enum_values, created_at, updated_at
		FROM attributes WHERE id = $1`
	var a entity.Attribute
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.DataType, &a.EnumValues, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attribute: %w", err)
	}
	return &a, nil
}

// GetByName obtiene un atributo por nombre (único).
func (r *AttributeRepo) GetByName(name string) (*entity.Attribute, error) {
	query := `
		SELECT id, name, data_type, enum_values, created_at, updated_at
		FROM attributes WHERE name = $1`
	var a entity.Attribute
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&a.ID, &a.Name, &a.DataType, &a.EnumValues, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attribute by name: %w", err)
	}
	return &a, nil
}

// List lista atributos con paginación, orden estable por creación.
func (r *AttributeRepo) List(limit, offset int) ([]*entity.Attribute, error) {
	query := `
		SELECT id, name, data_type, enum_values, created_at, updated_at
		FROM attributes ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list attributes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attribute
	for rows.Next() {
		var a entity.Attribute
		if err := rows.Scan(&a.ID, &a.Name, &a.DataType, &a.EnumValues, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attribute: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update sobreescribe nombre, tipo y enum_values. Devuelve domain.ErrNotFound
// si el ID no existe y domain.ErrDuplicate si el nuevo nombre colisiona.
func (r *AttributeRepo) Update(attribute *entity.Attribute) error {
	query := `
		UPDATE attributes SET name = $2, data_type = $3, enum_values = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		attribute.ID, attribute.Name, attribute.DataType, attribute.EnumValues, attribute.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update attribute: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un atributo por ID; sus asignaciones caen en cascada.
func (r *AttributeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM attributes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attribute: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
