package entity

import "time"

// CategoryAttribute asigna un Attribute a una Category e indica si el valor
// es obligatorio. A lo sumo una fila por par (CategoryID, AttributeID).
type CategoryAttribute struct {
	ID          string
	CategoryID  string
	AttributeID string
	IsRequired  bool
	CreatedAt   time.Time

	// Attribute es la definición asociada, cargada en listados (join).
	Attribute *Attribute
}
