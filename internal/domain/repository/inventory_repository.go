package repository

import (
	"context"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
)

// InventoryRepository puerto de lectura del inventario por empresa.
type InventoryRepository interface {
	// ListByCompany devuelve todas las filas de inventario de los productos de la empresa,
	// con producto y bodega resueltos.
	ListByCompany(ctx context.Context, companyID int64) ([]entity.InventoryItem, error)
}
