package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// AttributeRepository define el puerto de persistencia para Attribute (DIP).
type AttributeRepository interface {
	Create(attribute *entity.Attribute) error
	GetByID(id string) (*entity.Attribute, error)
	GetByName(name string) (*entity.Attribute, error)
	List(limit, offset int) ([]*entity.Attribute, error)
	Update(attribute *entity.Attribute) error
	Delete(id string) error
}
