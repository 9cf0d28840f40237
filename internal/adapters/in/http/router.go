// Package http is the inbound HTTP adapter. It validates requests against the embedded
// OpenAPI document, binds them through the generated server stubs and maps use case results
// and errors onto JSON responses.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"yardwork/api"
	"yardwork/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig holds the transport settings.
type RouterConfig struct {
	// RequestTimeout bounds every request context, and with it every claim. Zero disables it.
	RequestTimeout time.Duration
	// ValidateRequests turns on OpenAPI request validation.
	ValidateRequests bool
	// Swagger serves the API description and UI under /swagger/.
	Swagger bool
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

// NewRouter builds the echo instance serving the API, /health and, optionally, /swagger/.
func NewRouter(server *Server, config RouterConfig, logger *slog.Logger) (*echo.Echo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := LoadSpec()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	if config.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(config.RequestTimeout))
	}
	if config.ValidateRequests {
		validator, validatorErr := OpenAPIValidator(doc)
		if validatorErr != nil {
			return nil, validatorErr
		}
		e.Use(validator)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if config.Swagger {
		if err = RegisterSwagger(e, doc); err != nil {
			return nil, err
		}
	}

	servers.RegisterHandlers(e, server)
	return e, nil
}

// errorHandler renders framework errors (unknown routes, binding failures) with the same
// body as use case errors.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
