package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product pertenece a exactamente una categoría. SKU es único en toda la
// tabla, no por categoría.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal // NUMERIC(10,2)
	SKU         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
