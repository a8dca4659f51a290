package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// NewErrorHandler devuelve el traductor central de errores de Fiber: es el
// único punto donde un error de aplicación se convierte en respuesta HTTP.
// Un *domain.Error lleva su código y mensaje; cualquier otro error se responde
// como 500 genérico y el detalle queda solo en el log.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var appErr *domain.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = appErr.Message
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		if status >= 500 {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error interno")
		}

		return c.Status(status).JSON(Envelope{
			StatusCode: status,
			Success:    false,
			Message:    message,
		})
	}
}
