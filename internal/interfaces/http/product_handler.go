package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/application/usecase"
	"github.com/jhoicas/inventario-alertas/internal/domain"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, sku, price; warehouse_id e initial_quantity opcionales"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := decodeJSONObject(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.MsgInvalidJSONBody})
	}

	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: verr.Message})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: dto.MsgProductConflict})
		default:
			h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("crear producto")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.MsgInternalError})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: dto.MsgInvalidProductID})
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: dto.MsgProductNotFound})
		}
		h.log.Error().Err(err).Int("product_id", id).Msg("obtener producto")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.MsgInternalError})
	}
	return c.JSON(out)
}

var errNotJSONObject = errors.New("el cuerpo debe ser un objeto JSON no vacío")

// decodeJSONObject exige Content-Type JSON y un objeto con al menos una clave antes de
// decodificar en dst. Un objeto vacío se trata igual que un cuerpo ausente.
func decodeJSONObject(c *fiber.Ctx, dst any) error {
	if !c.Is("json") {
		return errNotJSONObject
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return err
	}
	if len(fields) == 0 {
		return errNotJSONObject
	}
	return c.BodyParser(dst)
}
