package dto

// SupplierDTO proveedor de una alerta. Todos los campos son null si el producto no tiene proveedor.
type SupplierDTO struct {
	ID           *int64  `json:"id" yaml:"id"`
	Name         *string `json:"name" yaml:"name"`
	ContactEmail *string `json:"contact_email" yaml:"contact_email"`
}

// LowStockAlertDTO alerta de stock bajo para un producto en una bodega.
// DaysUntilStockout siempre es null: no hay estimación de agotamiento.
type LowStockAlertDTO struct {
	ProductID         int64       `json:"product_id" yaml:"product_id"`
	ProductName       string      `json:"product_name" yaml:"product_name"`
	SKU               string      `json:"sku" yaml:"sku"`
	WarehouseID       int64       `json:"warehouse_id" yaml:"warehouse_id"`
	WarehouseName     string      `json:"warehouse_name" yaml:"warehouse_name"`
	CurrentStock      int64       `json:"current_stock" yaml:"current_stock"`
	Threshold         int64       `json:"threshold" yaml:"threshold"`
	DaysUntilStockout *int        `json:"days_until_stockout" yaml:"days_until_stockout"`
	Supplier          SupplierDTO `json:"supplier" yaml:"supplier"`
}

// LowStockAlertsResponse respuesta de GET /api/companies/{company_id}/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts" yaml:"alerts"`
	TotalAlerts int                `json:"total_alerts" yaml:"total_alerts"`
}
