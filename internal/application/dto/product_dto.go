package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Los punteros distinguen "ausente" de "valor cero"; Price se conserva crudo
// para aceptar tanto número como string JSON.
type CreateProductRequest struct {
	Name            *string         `json:"name" validate:"required"`
	SKU             *string         `json:"sku" validate:"required"`
	Price           json.RawMessage `json:"price" validate:"required"`
	WarehouseID     *int64          `json:"warehouse_id"`
	InitialQuantity *int64          `json:"initial_quantity"`
}

// CreateProductResponse salida de POST /api/products.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	ProductType string          `json:"product_type,omitempty"`
}
