package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kampfschwein/schweinchen-tcg/backend/utils"
)

// CustomErrorHandler answers /api routes with the JSON envelope and everything else with plain text.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		slog.Error("Unhandled request error",
			slog.String("type", "http"),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
	}

	if strings.HasPrefix(c.Path(), "/api/") || utils.WantsJSON(c) {
		if code == fiber.StatusInternalServerError {
			return utils.SendInternalServerError(c, message)
		}
		return utils.SendError(c, code, errorCode(code), message, nil)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(message)
}

// errorCode turns 404 into "NOT_FOUND".
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	}
}
