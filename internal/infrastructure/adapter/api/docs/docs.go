// Package docs embeds the OpenAPI description served at /openapi.yaml
package docs

import _ "embed"

// OpenAPISpec is the OpenAPI 3 document for the HTTP API
//
//go:embed openapi.yaml
var OpenAPISpec []byte
