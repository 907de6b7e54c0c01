package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
	"github.com/jhoicas/inventario-alertas/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-alertas/internal/interfaces/cli"
	"github.com/jhoicas/inventario-alertas/pkg/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, openScanner); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// openScanner conecta a PostgreSQL con la misma configuración que la API.
func openScanner(ctx context.Context) (cli.AlertScanner, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	uc := inventory.NewLowStockUseCase(
		postgres.NewInventoryRepository(pool),
		postgres.NewInventoryTransactionRepository(pool),
		postgres.NewSupplierRepository(pool),
		inventory.WithRecentSalesWindow(cfg.Alerts.RecentSalesWindow()),
	)
	return uc, pool.Close, nil
}
