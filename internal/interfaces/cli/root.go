// Package cli implementa stockctl, herramienta de operación sobre la misma base que la API.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
)

var version = "dev"

// AlertScanner lo que el CLI necesita del caso de uso de alertas.
type AlertScanner interface {
	GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error)
}

// ScannerFactory abre las dependencias (pool, repos) y devuelve el scanner y su cierre.
type ScannerFactory func(ctx context.Context) (AlertScanner, func(), error)

func newRootCmd(factory ScannerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stockctl",
		Short:         "Operaciones de inventario desde la terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAlertsCmd(factory))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "stockctl "+version)
		},
	}
}

// Execute ejecuta el comando raíz.
func Execute(ctx context.Context, factory ScannerFactory) error {
	return newRootCmd(factory).ExecuteContext(ctx)
}
