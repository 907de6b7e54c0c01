package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/inventario-alertas/internal/application/dto"
	"github.com/jhoicas/inventario-alertas/internal/infrastructure/ratelimit"
	"github.com/jhoicas/inventario-alertas/pkg/logger"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key en c.Locals para el id de la petición.
const LocalRequestID = "request_id"

// RequestLogger asigna un request id (o respeta el entrante) y registra cada petición con zerolog.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)
		c.Locals(LocalRequestID, reqID)

		// Resolver el error aquí para registrar el status real
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			event = log.Error()
		case status >= fiber.StatusBadRequest:
			event = log.Warn()
		}
		event.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("http")
		return nil
	}
}

// GetRequestID devuelve el request id del contexto (después de RequestLogger).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// RateLimit rechaza con 429 cuando la IP excede su presupuesto. Si el limitador falla
// (p. ej. Redis caído) la petición pasa.
func RateLimit(limiter ratelimit.Limiter, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			log.Warn().Err(err).Str("ip", c.IP()).Msg("rate limit no disponible")
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Error: dto.MsgTooManyRequests})
		}
		return c.Next()
	}
}

// ErrorHandler traduce errores no manejados al cuerpo {"error": "..."}.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			msg := fe.Message
			if fe.Code == fiber.StatusNotFound {
				msg = dto.MsgNotFound
			}
			if fe.Code >= fiber.StatusInternalServerError {
				msg = dto.MsgInternalError
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: msg})
		}
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("error no manejado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.MsgInternalError})
	}
}
