package http_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
)

func seedAlerts(store *fakeStore) {
	email := "orders@supplier.com"
	store.items[7] = []entity.InventoryItem{
		{ProductID: 1, ProductName: "Widget A", SKU: "WID-001", ProductType: entity.ProductTypeFastMoving, WarehouseID: 1, WarehouseName: "Main Warehouse", Quantity: 5},
		{ProductID: 2, ProductName: "Widget B", SKU: "WID-002", ProductType: entity.ProductTypeRegular, WarehouseID: 1, WarehouseName: "Main Warehouse", Quantity: 10},
		{ProductID: 3, ProductName: "Widget C", SKU: "WID-003", ProductType: entity.ProductTypeSlowMoving, WarehouseID: 2, WarehouseName: "Overflow", Quantity: 1},
		{ProductID: 4, ProductName: "Widget D", SKU: "WID-004", ProductType: entity.ProductTypeOther, WarehouseID: 2, WarehouseName: "Overflow", Quantity: 2},
	}
	store.transactions = []entity.InventoryTransaction{
		{ProductID: 1, WarehouseID: 1, ChangeQuantity: -3, CreatedAt: testNow.AddDate(0, 0, -2)},
		{ProductID: 2, WarehouseID: 1, ChangeQuantity: -1, CreatedAt: testNow.AddDate(0, 0, -1)},
		{ProductID: 3, WarehouseID: 2, ChangeQuantity: -1, CreatedAt: testNow.AddDate(0, 0, -45)},
		{ProductID: 4, WarehouseID: 2, ChangeQuantity: -2, CreatedAt: testNow.AddDate(0, 0, -29)},
	}
	store.suppliers[1] = entity.Supplier{ID: 789, Name: "Supplier Corp", ContactEmail: &email}
}

func TestGetLowStock_DevuelveAlertas(t *testing.T) {
	store := newFakeStore()
	seedAlerts(store)
	app := buildTestApp(store, nil)

	resp := doJSON(t, app, http.MethodGet, "/api/companies/7/alerts/low-stock", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, float64(2), body["total_alerts"])
	alerts, ok := body["alerts"].([]any)
	require.True(t, ok)
	require.Len(t, alerts, 2)

	first := alerts[0].(map[string]any)
	assert.Equal(t, float64(1), first["product_id"])
	assert.Equal(t, "Widget A", first["product_name"])
	assert.Equal(t, "WID-001", first["sku"])
	assert.Equal(t, float64(1), first["warehouse_id"])
	assert.Equal(t, "Main Warehouse", first["warehouse_name"])
	assert.Equal(t, float64(5), first["current_stock"])
	assert.Equal(t, float64(20), first["threshold"])
	assert.Contains(t, first, "days_until_stockout")
	assert.Nil(t, first["days_until_stockout"])
	assert.Equal(t, map[string]any{"id": float64(789), "name": "Supplier Corp", "contact_email": "orders@supplier.com"}, first["supplier"])

	second := alerts[1].(map[string]any)
	assert.Equal(t, float64(4), second["product_id"])
	assert.Equal(t, float64(10), second["threshold"])
	assert.Equal(t, map[string]any{"id": nil, "name": nil, "contact_email": nil}, second["supplier"])
}

func TestGetLowStock_EmpresaSinInventario(t *testing.T) {
	app := buildTestApp(newFakeStore(), nil)

	resp := doJSON(t, app, http.MethodGet, "/api/companies/99/alerts/low-stock", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{}, body["alerts"])
	assert.Equal(t, float64(0), body["total_alerts"])
}

func TestGetLowStock_CompanyIDInvalido(t *testing.T) {
	app := buildTestApp(newFakeStore(), nil)

	for _, path := range []string{
		"/api/companies/abc/alerts/low-stock",
		"/api/companies/0/alerts/low-stock",
		"/api/companies/-4/alerts/low-stock",
	} {
		resp := doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "Invalid company id", decodeBody(t, resp)["error"])
	}
}

func TestGetLowStock_ErrorDeBaseDeDatos(t *testing.T) {
	store := newFakeStore()
	store.scanErr = errors.New("relation \"inventory\" does not exist")
	app := buildTestApp(store, nil)

	resp := doJSON(t, app, http.MethodGet, "/api/companies/7/alerts/low-stock", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", decodeBody(t, resp)["error"])
}
