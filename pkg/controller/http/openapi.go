package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/m-mizutani/beacon/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed schema/openapi.yaml
var openAPISchema []byte

// LoadOpenAPI loads and validates the embedded OpenAPI document
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISchema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load OpenAPI schema")
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, goerr.Wrap(err, "invalid OpenAPI schema")
	}

	return doc, nil
}

// newOpenAPIHandler serves doc as JSON. The document is encoded once.
func newOpenAPIHandler(doc *openapi3.T) (http.HandlerFunc, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode OpenAPI schema")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(raw); err != nil {
			logging.From(r.Context()).Error("Failed to write OpenAPI schema", "error", err)
		}
	}, nil
}
