package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fulfillment/internal/core/domain/model/checklist"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps a use case error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentUpdate),
		errors.Is(err, order.ErrOrderIsNotInFulfillment),
		errors.Is(err, order.ErrOrderIsCompleted),
		errors.Is(err, checklist.ErrChecklistIsIncomplete):
		return http.StatusConflict
	case errors.Is(err, errs.ErrGenerationFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := StatusFor(err)
	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = http.StatusText(status)
	case http.StatusBadGateway:
		s.logger.Warn("checklist generation failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// ErrorHandler renders errors that escaped the handlers, binding and routing
// errors included, in the Error shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.Error("unhandled error", "path", ctx.Path(), "error", err)
		}

		if writeErr := ctx.JSON(status, Error{Code: status, Message: message}); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
