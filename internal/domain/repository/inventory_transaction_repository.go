package repository

import (
	"context"
	"time"
)

// InventoryTransactionRepository puerto sobre el log de movimientos de inventario.
type InventoryTransactionRepository interface {
	// HasOutflowSince indica si existe al menos una salida (change_quantity < 0) del producto
	// en la bodega con fecha >= since.
	HasOutflowSince(ctx context.Context, productID, warehouseID int64, since time.Time) (bool, error)
}
