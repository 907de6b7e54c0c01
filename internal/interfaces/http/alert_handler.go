package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

// AlertHandler expone las alertas de inventario.
type AlertHandler struct {
	lowStock *inventory.LowStockUseCase
	log      *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(lowStock *inventory.LowStockUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{lowStock: lowStock, log: log}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Productos con stock bajo su umbral por tipo y con al menos una salida en los últimos 30 días,
//
//	por bodega, con un proveedor de contacto.
//
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("company_id")
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.MsgInvalidCompanyID})
	}

	out, err := h.lowStock.GetLowStockAlerts(c.UserContext(), int64(companyID))
	if err != nil {
		h.log.Error().Err(err).
			Int("company_id", companyID).
			Str("request_id", GetRequestID(c)).
			Msg("escanear stock bajo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.MsgInternalError})
	}

	h.log.Debug().Int("company_id", companyID).Int("total_alerts", out.TotalAlerts).Msg("alertas de stock bajo")
	return c.JSON(out)
}
