package entity

import "time"

// ProductAttributeValue es el valor que un producto tiene para uno de los
// atributos asignados a su categoría. CategoryAttributeID debe referenciar
// una asignación cuya categoría coincida con la del producto; esa regla se
// valida en el caso de uso antes de insertar.
type ProductAttributeValue struct {
	ID                  string
	ProductID           string
	CategoryAttributeID string
	Value               string
	CreatedAt           time.Time
}
