package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/domain"
	"github.com/jhoicas/inventario-alertas/internal/domain/entity"
	"github.com/jhoicas/inventario-alertas/internal/domain/repository"
)

// ProductUseCase casos de uso de productos: alta con validación y lectura.
type ProductUseCase struct {
	tx       ProductTxRunner
	repo     repository.ProductRepository
	validate *validator.Validate
}

// NewProductUseCase construye el caso de uso. repo se usa para lecturas fuera de transacción.
func NewProductUseCase(tx ProductTxRunner, repo repository.ProductRepository) *ProductUseCase {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar campos con el nombre del tag json (sku, no SKU)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ProductUseCase{tx: tx, repo: repo, validate: v}
}

// Create valida la entrada y persiste el producto. Errores:
//   - *domain.ValidationError (400) para campos faltantes o inválidos,
//   - domain.ErrConflict (409) para SKU duplicado o bodega inexistente,
//   - cualquier otro error es interno (500).
//
// warehouse_id e initial_quantity se validan pero no generan fila de inventario.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, domain.NewValidationError(fmt.Sprintf("%s is required", verrs[0].Field()))
		}
		return nil, fmt.Errorf("validar producto: %w", err)
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, domain.NewValidationError(dto.MsgInvalidPrice)
	}

	var quantity int64
	if in.InitialQuantity != nil {
		quantity = *in.InitialQuantity
	}
	if quantity < 0 {
		return nil, domain.NewValidationError(dto.MsgNegativeQuantity)
	}

	product := &entity.Product{
		Name:  *in.Name,
		SKU:   *in.SKU,
		Price: price,
	}
	err = uc.tx.Run(ctx, func(productRepo repository.ProductRepository) error {
		return productRepo.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{
		Message:   dto.MsgProductCreated,
		ProductID: product.ID,
	}, nil
}

// GetByID obtiene un producto por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

var errInvalidPrice = errors.New("precio inválido")

// Límites de NUMERIC en PostgreSQL: dígitos antes y después del punto decimal.
const (
	maxPriceIntegerDigits  = 131072
	maxPriceFractionDigits = 16383
)

// parsePrice acepta número o string JSON con un decimal no negativo.
func parsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero, errInvalidPrice
	}
	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, errInvalidPrice
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(raw)
	default:
		// null, true/false, objetos y arreglos
		return decimal.Zero, errInvalidPrice
	}
	price, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, errInvalidPrice
	}
	if price.IsNegative() {
		return decimal.Zero, errInvalidPrice
	}
	// Exponentes fuera de rango no caben en la columna y su codificación binaria no termina
	exp := int64(price.Exponent())
	if exp < -maxPriceFractionDigits || int64(price.NumDigits())+exp > maxPriceIntegerDigits {
		return decimal.Zero, errInvalidPrice
	}
	return price, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Price:       p.Price,
		ProductType: p.ProductType,
	}
}
