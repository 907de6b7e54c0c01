package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo consultas sobre inventory_transaction (usable con pool o tx).
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// HasOutflowSince busca una sola salida del producto en la bodega desde since (inclusive).
func (r *InventoryTransactionRepo) HasOutflowSince(ctx context.Context, productID, warehouseID int64, since time.Time) (bool, error) {
	query := `
		SELECT 1
		FROM inventory_transaction
		WHERE product_id = $1
		  AND warehouse_id = $2
		  AND change_quantity < 0
		  AND created_at >= $3
		LIMIT 1`
	var one int
	err := r.q.QueryRow(ctx, query, productID, warehouseID, since).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("recent outflow: %w", err)
	}
	return true, nil
}
