package entity

import "time"

// Attribute es una definición reutilizable de atributo, no atada a una
// categoría. DataType y EnumValues son strings opacos: no se validan contra
// un conjunto cerrado.
type Attribute struct {
	ID         string
	Name       string // único global
	DataType   string // ej. "text", "number", "enum"
	EnumValues string // valores permitidos separados por coma cuando DataType es enum
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
