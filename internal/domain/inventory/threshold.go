package inventory

import (
	"time"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
)

// DefaultThreshold umbral para tipos de producto sin entrada en la tabla.
const DefaultThreshold int64 = 10

// DefaultRecentSalesWindow ventana en la que debe existir al menos una salida para alertar.
const DefaultRecentSalesWindow = 30 * 24 * time.Hour

var thresholdByType = map[string]int64{
	entity.ProductTypeFastMoving: 20,
	entity.ProductTypeRegular:    10,
	entity.ProductTypeSlowMoving: 5,
}

// ThresholdFor devuelve el umbral de stock bajo para un tipo de producto (servicio de dominio).
func ThresholdFor(productType string) int64 {
	if t, ok := thresholdByType[productType]; ok {
		return t
	}
	return DefaultThreshold
}

// IsLowStock indica si la cantidad está estrictamente por debajo del umbral.
// Cantidad igual al umbral no se considera baja.
func IsLowStock(quantity, threshold int64) bool {
	return quantity < threshold
}
