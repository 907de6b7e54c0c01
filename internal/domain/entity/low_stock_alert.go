package entity

// LowStockAlert stock de un producto en una bodega por debajo de su umbral y con ventas recientes.
// Supplier es nil cuando el producto no tiene proveedor asociado.
type LowStockAlert struct {
	Item      InventoryItem
	Threshold int64
	Supplier  *Supplier
}
