package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-alertas/internal/application/inventory"
	"github.com/jhoicas/inventario-alertas/internal/application/usecase"
	"github.com/jhoicas/inventario-alertas/internal/domain"
	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
	"github.com/jhoicas/inventario-alertas/internal/infrastructure/ratelimit"
	apphttp "github.com/jhoicas/inventario-alertas/internal/interfaces/http"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)

type fakeStore struct {
	mu           sync.Mutex
	items        map[int64][]entity.InventoryItem // por company_id
	transactions []entity.InventoryTransaction
	suppliers    map[int64]entity.Supplier
	products     map[int64]entity.Product
	nextID       int64
	scanErr      error
	createErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:     make(map[int64][]entity.InventoryItem),
		suppliers: make(map[int64]entity.Supplier),
		products:  make(map[int64]entity.Product),
	}
}

func (s *fakeStore) ListByCompany(ctx context.Context, companyID int64) ([]entity.InventoryItem, error) {
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	return s.items[companyID], nil
}

func (s *fakeStore) HasOutflowSince(ctx context.Context, productID, warehouseID int64, since time.Time) (bool, error) {
	for _, tx := range s.transactions {
		if tx.ProductID == productID && tx.WarehouseID == warehouseID && tx.ChangeQuantity < 0 && !tx.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) FindOneByProduct(ctx context.Context, productID int64) (*entity.Supplier, error) {
	sup, ok := s.suppliers[productID]
	if !ok {
		return nil, nil
	}
	return &sup, nil
}

func (s *fakeStore) Create(ctx context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.products {
		if existing.SKU == p.SKU {
			return domain.ErrConflict
		}
	}
	s.nextID++
	p.ID = s.nextID
	s.products[p.ID] = *p
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *fakeStore) Run(ctx context.Context, fn func(repository.ProductRepository) error) error {
	return fn(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(store *fakeStore, limiter ratelimit.Limiter) *fiber.App {
	log := logger.Nop()
	app := apphttp.NewApp("inventario-alertas-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:     "inventario-alertas-test",
		LowStock:    inventory.NewLowStockUseCase(store, store, store, inventory.WithClock(func() time.Time { return testNow })),
		ProductUC:   usecase.NewProductUseCase(store, store),
		RateLimiter: limiter,
		Logger:      log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
