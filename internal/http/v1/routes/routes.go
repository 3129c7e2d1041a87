package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/solar-playground/internal/http/v1/bodies"
	"github.com/janisto/solar-playground/internal/http/v1/data"
	"github.com/janisto/solar-playground/internal/http/v1/system"
)

// BasePath is the path prefix shared by every v1 operation.
const BasePath = "/api"

// Register wires all v1 operations into the provided API.
func Register(api huma.API) {
	data.Register(api, BasePath)
	bodies.Register(api, BasePath, apiPrefix(api))
	system.Register(api, BasePath)
}

// NewConfig returns the Huma configuration for the API. Schema link hooks are
// dropped so response bodies carry no $schema field or describedBy link.
func NewConfig(title, version, docsPath string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.DocsPath = docsPath
	cfg.CreateHooks = nil
	return cfg
}

// MirrorCBOR advertises application/cbor next to every application/json
// request and response body in the OpenAPI document.
func MirrorCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

// apiPrefix returns the path of the first server URL, used when the API is
// mounted behind a path-rewriting proxy.
func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" && u.Path != "/" {
			return u.Path
		}
	}
	return ""
}
