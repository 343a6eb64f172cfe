package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LocalRequestID key del request id en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger registra cada petición: método, ruta, status, duración y request id.
// Reutiliza X-Request-ID si el cliente lo envía; si no, genera uno y lo devuelve en la respuesta.
// Nivel según status: info (<400), warn (4xx), error (5xx).
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		c.Locals(LocalRequestID, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// El ErrorHandler aún no escribió la respuesta.
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = log.Error().Err(err)
		case status >= 400:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user", GetUsername(c)).
			Msg("petición HTTP")
		return err
	}
}
