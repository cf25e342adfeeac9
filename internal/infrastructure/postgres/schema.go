package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas del catálogo si no existen. Es idempotente y
// se ejecuta en el arranque.
//
// Política de borrado: las asignaciones y los valores de atributo se limpian
// en cascada; products.category_id es RESTRICT, borrar una categoría con
// productos falla y se traduce a conflicto en el caso de uso.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attributes (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			data_type   TEXT NOT NULL,
			enum_values TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS category_attributes (
			id           UUID PRIMARY KEY,
			category_id  UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			attribute_id UUID NOT NULL REFERENCES attributes(id) ON DELETE CASCADE,
			is_required  BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL,
			UNIQUE (category_id, attribute_id)
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id          UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price       NUMERIC(10,2) NOT NULL,
			sku         TEXT NOT NULL UNIQUE,
			created_at  TIMESTAMPTZ NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS product_attribute_values (
			id                    UUID PRIMARY KEY,
			product_id            UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			category_attribute_id UUID NOT NULL REFERENCES category_attributes(id) ON DELETE CASCADE,
			value                 TEXT NOT NULL,
			created_at            TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pav_product ON product_attribute_values (product_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
