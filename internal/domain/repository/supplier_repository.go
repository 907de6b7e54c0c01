package repository

import (
	"context"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
)

// SupplierRepository puerto de lectura de proveedores.
type SupplierRepository interface {
	// FindOneByProduct devuelve un proveedor cualquiera del producto, o nil, nil si no tiene.
	FindOneByProduct(ctx context.Context, productID int64) (*entity.Supplier, error)
}
