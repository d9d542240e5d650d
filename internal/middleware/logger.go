package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request once the handler chain returns.
// It reads the id set by the requestid middleware when present.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		evt := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error()
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		}

		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
			evt = evt.Str("request_id", id)
		}

		evt.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}
