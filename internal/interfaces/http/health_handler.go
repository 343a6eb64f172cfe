package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/garden-api/internal/application/dto"
)

// HealthHandler GET /health: 200 si la base de datos responde, 503 si no.
func HealthHandler(ping func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if ping != nil {
			if err := ping(ctx); err != nil {
				log.Warn().Err(err).Msg("health: base de datos no disponible")
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Database: "down"})
			}
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Database: "up"})
	}
}
