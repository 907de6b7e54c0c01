package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo lectura de inventario sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// ListByCompany une inventory, product y warehouse para los productos de la empresa.
func (r *InventoryRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.InventoryItem, error) {
	query := `
		SELECT
			p.id,
			p.name,
			p.sku,
			COALESCE(p.product_type, ''),
			w.id,
			w.name,
			i.quantity
		FROM inventory i
		JOIN product p   ON p.id = i.product_id
		JOIN warehouse w ON w.id = i.warehouse_id
		WHERE p.company_id = $1
		ORDER BY p.id, w.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by company: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ProductID, &it.ProductName, &it.SKU, &it.ProductType,
			&it.WarehouseID, &it.WarehouseName, &it.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
