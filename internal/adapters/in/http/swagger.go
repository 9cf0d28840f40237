package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded document to the swagger UI in JSON form.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// RegisterSwagger publishes doc under swag's default instance and mounts the UI on /swagger/.
// swag allows a single registration per name, so only the first document is kept.
func RegisterSwagger(e *echo.Echo, doc *openapi3.T) error {
	swaggerOnce.Do(func() {
		raw, err := doc.MarshalJSON()
		if err != nil {
			swaggerErr = fmt.Errorf("failed to encode OpenAPI document: %w", err)
			return
		}
		swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	})
	if swaggerErr != nil {
		return swaggerErr
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
