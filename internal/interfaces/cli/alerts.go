package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
)

func newAlertsCmd(factory ScannerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Alertas de inventario",
	}
	cmd.AddCommand(newLowStockCmd(factory))
	return cmd
}

func newLowStockCmd(factory ScannerFactory) *cobra.Command {
	var (
		companyID int64
		output    string
	)
	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "Lista productos con stock bajo y ventas recientes de una empresa",
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyID <= 0 {
				return fmt.Errorf("--company debe ser un entero positivo")
			}
			if output != "json" && output != "yaml" {
				return fmt.Errorf("--output inválido %q (json|yaml)", output)
			}

			scanner, closeFn, err := factory(cmd.Context())
			if err != nil {
				return fmt.Errorf("inicializar: %w", err)
			}
			defer closeFn()

			out, err := scanner.GetLowStockAlerts(cmd.Context(), companyID)
			if err != nil {
				return fmt.Errorf("escanear stock bajo: %w", err)
			}
			return writeAlerts(cmd.OutOrStdout(), output, out)
		},
	}
	cmd.Flags().Int64Var(&companyID, "company", 0, "ID de la empresa")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "formato de salida: json o yaml")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func writeAlerts(w io.Writer, format string, out *dto.LowStockAlertsResponse) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
