package api

import (
	"errors"
	"time"

	"game-matchmaker/internal/domain/entity"
	"game-matchmaker/internal/logging"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger writes one zerolog line per request.
func RequestLogger() fiber.Handler {
	log := logging.With("http")

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			switch {
			case errors.Is(err, entity.ErrInvalidRequest):
				status = fiber.StatusUnprocessableEntity
			case errors.As(err, &fe):
				status = fe.Code
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")

		return err
	}
}
