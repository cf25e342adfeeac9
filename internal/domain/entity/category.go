package entity

import "time"

// Category agrupa productos y define qué atributos aplican a cada uno.
type Category struct {
	ID          string
	Name        string // único global
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
