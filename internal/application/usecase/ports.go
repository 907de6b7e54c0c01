package usecase

import (
	"context"

	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

// ProductTxRunner ejecuta fn dentro de una transacción de BD con un repositorio atado a ella.
// Si fn devuelve error se hace Rollback; si no, Commit.
type ProductTxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
