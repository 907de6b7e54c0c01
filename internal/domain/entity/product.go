package entity

import "github.com/shopspring/decimal"

// Tipos de producto. Determinan el umbral de stock bajo.
const (
	ProductTypeFastMoving = "fast_moving"
	ProductTypeRegular    = "regular"
	ProductTypeSlowMoving = "slow_moving"
	ProductTypeOther      = "other"
)

// Product representa un producto del catálogo.
// SKU es único en toda la tabla; Price nunca es negativo.
type Product struct {
	ID          int64
	CompanyID   *int64
	Name        string
	SKU         string
	Price       decimal.Decimal
	ProductType string
}
