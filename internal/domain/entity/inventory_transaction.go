package entity

import "time"

// InventoryTransaction entrada del log de movimientos (solo inserción).
// ChangeQuantity negativo = venta o salida.
type InventoryTransaction struct {
	ID             int64
	ProductID      int64
	WarehouseID    int64
	ChangeQuantity int64
	CreatedAt      time.Time
}
