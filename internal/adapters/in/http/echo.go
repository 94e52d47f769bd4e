package http

import (
	"log/slog"

	"fulfillment/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the HTTP router: recovery, body validation against the
// OpenAPI document, the API routes and the Swagger UI under /swagger.
func NewEcho(si ServerInterface, validator *api.RequestBodyValidator, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(ValidateRequestBody(validator))

	RegisterHandlersWithBaseURL(e, si, BasePath)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
