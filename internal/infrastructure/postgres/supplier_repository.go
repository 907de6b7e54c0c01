package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo lectura de proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// FindOneByProduct devuelve el primer proveedor que entregue la base; sin orden definido.
func (r *SupplierRepo) FindOneByProduct(ctx context.Context, productID int64) (*entity.Supplier, error) {
	query := `
		SELECT s.id, s.name, s.contact_email
		FROM supplier s
		JOIN supplier_product sp ON sp.supplier_id = s.id
		WHERE sp.product_id = $1
		LIMIT 1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, productID).Scan(&s.ID, &s.Name, &s.ContactEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find supplier by product: %w", err)
	}
	return &s, nil
}
