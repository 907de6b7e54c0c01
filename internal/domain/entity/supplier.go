package entity

// Supplier proveedor; relación muchos a muchos con Product vía supplier_product.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail *string // nil si el proveedor no tiene email
}
