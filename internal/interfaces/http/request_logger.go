package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger registra cada request con zerolog: método, ruta, status, duración, IP,
// user agent y el X-Request-ID que pone el middleware requestid.
// Los 5xx van a nivel error y los 4xx a warn.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			// El ErrorHandler todavía no escribió la respuesta.
			status = fiber.StatusInternalServerError
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(chainErr)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.IP()).
			Str("user_agent", c.Get(fiber.HeaderUserAgent)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")

		return chainErr
	}
}
