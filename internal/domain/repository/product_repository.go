package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
}

// ProductAttributeValueRepository define el puerto de persistencia para los
// valores de atributo de un producto.
type ProductAttributeValueRepository interface {
	Create(value *entity.ProductAttributeValue) error
	ListForProduct(productID string) ([]*entity.ProductAttributeValue, error)
	// UpdateValue sobreescribe el valor de una fila existente.
	UpdateValue(id, value string) error
}
