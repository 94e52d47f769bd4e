// Package api carries the OpenAPI document of the HTTP interface.
package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// swaggerDoc exposes the document to swag, which echo-swagger reads from.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// Register publishes doc under swag's default instance name. Only the first
// call has an effect.
func Register(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}

// RequestBodyValidator checks JSON request bodies against the document.
type RequestBodyValidator struct {
	doc *openapi3.T
}

func NewRequestBodyValidator(doc *openapi3.T) *RequestBodyValidator {
	return &RequestBodyValidator{doc: doc}
}

// Validate checks body against the JSON schema of the operation at method and
// path, where path uses echo's ":param" syntax and may carry the server prefix.
// Operations without a JSON body schema accept anything.
func (v *RequestBodyValidator) Validate(method, path string, body []byte) error {
	schema := v.schemaFor(method, path)
	if schema == nil {
		return nil
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("request body is not valid JSON: %w", err)
	}
	return schema.VisitJSON(value)
}

func (v *RequestBodyValidator) schemaFor(method, path string) *openapi3.Schema {
	item := v.doc.Paths.Find(v.openAPIPath(path))
	if item == nil {
		return nil
	}
	op := item.GetOperation(strings.ToUpper(method))
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

// openAPIPath turns "/api/v1/orders/:orderId/assignment" into
// "/orders/{orderId}/assignment".
func (v *RequestBodyValidator) openAPIPath(path string) string {
	for _, server := range v.doc.Servers {
		if server == nil {
			continue
		}
		if trimmed, ok := strings.CutPrefix(path, server.URL); ok {
			path = trimmed
			break
		}
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if name, ok := strings.CutPrefix(segment, ":"); ok {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

// IsJSONBodyMethod reports whether requests with method may carry a body.
func IsJSONBodyMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}
