package http

import (
	"bytes"
	"io"
	"net/http"

	"fulfillment/api"

	"github.com/labstack/echo/v4"
)

// ValidateRequestBody rejects JSON bodies that do not match the OpenAPI
// schema of the matched route. The body is restored for the handler.
func ValidateRequestBody(validator *api.RequestBodyValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !api.IsJSONBodyMethod(req.Method) {
				return next(ctx)
			}

			var body []byte
			if req.Body != nil {
				raw, err := io.ReadAll(req.Body)
				if err != nil {
					return echo.NewHTTPError(http.StatusBadRequest, "Failed to read request body")
				}
				body = raw
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			if err := validator.Validate(req.Method, ctx.Path(), body); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
			}
			return next(ctx)
		}
	}
}
