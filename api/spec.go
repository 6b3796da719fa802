package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed api.yaml
var rawSpec []byte

// GetSwagger parses the embedded OpenAPI document and validates it.
func GetSwagger(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi spec: %w", err)
	}

	err = doc.Validate(ctx)
	if err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}

	return doc, nil
}
