package api

import (
	_ "embed"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=cfg.yaml openapi.yaml

//go:embed openapi.yaml
var openapiYAML []byte

// OpenAPIDocument returns the YAML document the handlers are generated from,
// as served at /openapi.
func OpenAPIDocument() []byte {
	return openapiYAML
}
