package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción: o todo se confirma o todo se revierte. Lo implementa la
// infraestructura (postgres.TxRunner).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		valueRepo repository.ProductAttributeValueRepository,
		assignmentRepo repository.CategoryAttributeRepository,
	) error) error
}
