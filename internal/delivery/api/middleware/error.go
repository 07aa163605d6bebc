package middleware

import (
	"log/slog"
	"net/http"

	"dnotes/internal/delivery/api/response"
	deliverycontext "dnotes/internal/delivery/context"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Declined business operations are logged at info or warn; store failures at error with an opaque body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	attrs := []any{
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		kind := appErr.Kind()
		attrs = append(attrs, slog.String("kind", kind.String()), slog.String("code", appErr.ErrorCode()))

		if !kind.Business() {
			logger.Error("Request failed", append(attrs, slog.Any("error", err), slog.Bool("retryable", kind.Retryable()))...)
			_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

			return
		}

		level := slog.LevelInfo
		if kind == domainerrors.KindAuthentication || kind == domainerrors.KindNotOwned {
			level = slog.LevelWarn
		}
		logger.Log(c.Request().Context(), level, "Request declined", append(attrs, slog.String("details", appErr.Details()))...)
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Check if it is an Echo HTTPError
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error", append(attrs, slog.Any("error", err))...)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
