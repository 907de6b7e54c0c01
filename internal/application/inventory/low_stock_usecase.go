package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-alertas/internal/domain/inventory"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

// LowStockUseCase genera las alertas de stock bajo de una empresa en todas sus bodegas.
// Solo lectura: no escribe en la base de datos.
type LowStockUseCase struct {
	inventoryRepo   repository.InventoryRepository
	transactionRepo repository.InventoryTransactionRepository
	supplierRepo    repository.SupplierRepository
	window          time.Duration
	now             func() time.Time
}

// LowStockOption ajusta el caso de uso (ventana de ventas, reloj).
type LowStockOption func(*LowStockUseCase)

// WithRecentSalesWindow cambia la ventana de ventas recientes (por defecto 30 días).
func WithRecentSalesWindow(d time.Duration) LowStockOption {
	return func(uc *LowStockUseCase) {
		if d > 0 {
			uc.window = d
		}
	}
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) LowStockOption {
	return func(uc *LowStockUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewLowStockUseCase construye el caso de uso de alertas.
func NewLowStockUseCase(
	inventoryRepo repository.InventoryRepository,
	transactionRepo repository.InventoryTransactionRepository,
	supplierRepo repository.SupplierRepository,
	opts ...LowStockOption,
) *LowStockUseCase {
	uc := &LowStockUseCase{
		inventoryRepo:   inventoryRepo,
		transactionRepo: transactionRepo,
		supplierRepo:    supplierRepo,
		window:          domaininv.DefaultRecentSalesWindow,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Scan recorre el inventario de la empresa y devuelve las filas con stock bajo y ventas recientes.
func (uc *LowStockUseCase) Scan(ctx context.Context, companyID int64) ([]entity.LowStockAlert, error) {
	items, err := uc.inventoryRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar inventario: %w", err)
	}

	since := uc.now().UTC().Add(-uc.window)
	alerts := make([]entity.LowStockAlert, 0)
	for _, item := range items {
		threshold := domaininv.ThresholdFor(item.ProductType)
		if !domaininv.IsLowStock(item.Quantity, threshold) {
			continue
		}

		// Stock inactivo (sin salidas recientes) no se alerta
		sold, err := uc.transactionRepo.HasOutflowSince(ctx, item.ProductID, item.WarehouseID, since)
		if err != nil {
			return nil, fmt.Errorf("ventas recientes producto %d bodega %d: %w", item.ProductID, item.WarehouseID, err)
		}
		if !sold {
			continue
		}

		supplier, err := uc.supplierRepo.FindOneByProduct(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("proveedor producto %d: %w", item.ProductID, err)
		}

		alerts = append(alerts, entity.LowStockAlert{
			Item:      item,
			Threshold: threshold,
			Supplier:  supplier,
		})
	}
	return alerts, nil
}

// GetLowStockAlerts ejecuta Scan y arma la respuesta HTTP/CLI.
func (uc *LowStockUseCase) GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	alerts, err := uc.Scan(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, toLowStockAlertDTO(a))
	}
	return &dto.LowStockAlertsResponse{
		Alerts:      out,
		TotalAlerts: len(out),
	}, nil
}

func toLowStockAlertDTO(a entity.LowStockAlert) dto.LowStockAlertDTO {
	var supplier dto.SupplierDTO
	if a.Supplier != nil {
		id, name := a.Supplier.ID, a.Supplier.Name
		supplier = dto.SupplierDTO{ID: &id, Name: &name, ContactEmail: a.Supplier.ContactEmail}
	}
	return dto.LowStockAlertDTO{
		ProductID:     a.Item.ProductID,
		ProductName:   a.Item.ProductName,
		SKU:           a.Item.SKU,
		WarehouseID:   a.Item.WarehouseID,
		WarehouseName: a.Item.WarehouseName,
		CurrentStock:  a.Item.Quantity,
		Threshold:     a.Threshold,
		Supplier:      supplier,
	}
}
