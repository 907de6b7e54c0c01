package entity

// InventoryItem fila de inventario (producto, bodega) con los metadatos de ambos ya resueltos.
// Quantity nunca es negativa.
type InventoryItem struct {
	ProductID     int64
	ProductName   string
	SKU           string
	ProductType   string
	WarehouseID   int64
	WarehouseName string
	Quantity      int64
}
