package repository

import (
	"context"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create inserta el producto y asigna product.ID. Devuelve domain.ErrConflict
	// ante SKU duplicado o referencia inexistente.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
