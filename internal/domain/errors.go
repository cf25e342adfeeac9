package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidReference = errors.New("referencia de atributo inválida")
	ErrCategoryInUse    = errors.New("la categoría tiene productos asociados")
)
