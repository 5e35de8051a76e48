package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kampfschwein/schweinchen-tcg/backend/utils"
	"github.com/kampfschwein/schweinchen-tcg/tcg/logger"
)

// LoggingMiddleware logs every request once, after the error handler has set the final status.
func LoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		attrs := []any{
			slog.String("ip", utils.GetIPAddress(c)),
			slog.Int("size", len(c.Response().Body())),
		}
		if q := c.Request().URI().QueryArgs().String(); q != "" {
			attrs = append(attrs, slog.String("query", q))
		}

		logger.LogRequest(c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start), attrs...)
		return nil
	}
}
