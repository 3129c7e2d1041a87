package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/janisto/solar-playground/internal/platform/logging"
	appmiddleware "github.com/janisto/solar-playground/internal/platform/middleware"
	"github.com/janisto/solar-playground/internal/platform/respond"
)

func newTestAPI() (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, NewConfig("RoutesTest", "test", "/api-docs"))
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, MirrorCBOR)
	Register(api)
	return router, api
}

func TestRegisterServesEveryOperation(t *testing.T) {
	router, _ := newTestAPI()

	for _, path := range []string{"/api/data", "/api/bodies", "/api/bodies/mars", "/api/system?seed=1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(chimiddleware.RequestIDHeader, "routes-"+path)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestNewConfigDropsSchemaLinks(t *testing.T) {
	router, _ := newTestAPI()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/data", nil))

	if strings.Contains(resp.Body.String(), "$schema") {
		t.Fatalf("expected no $schema field, got %s", resp.Body.String())
	}
	if link := resp.Header().Get("Link"); link != "" {
		t.Fatalf("expected no Link header, got %q", link)
	}
}

func TestMirrorCBORInOpenAPI(t *testing.T) {
	_, api := newTestAPI()

	op := api.OpenAPI().Paths["/api/data"].Get
	if op == nil {
		t.Fatal("expected get-data operation in OpenAPI document")
	}
	if op.OperationID != "get-data" {
		t.Fatalf("unexpected operation ID %q", op.OperationID)
	}
	content := op.Responses["200"].Content
	if content["application/cbor"] == nil || content["application/cbor"] != content["application/json"] {
		t.Fatalf("expected application/cbor to mirror application/json, got %v", content)
	}
}

func TestMirrorCBORSkipsNilContent(t *testing.T) {
	op := &huma.Operation{
		Responses: map[string]*huma.Response{
			"204": {Description: "No Content"},
		},
	}
	MirrorCBOR(nil, op)
	if op.Responses["204"].Content != nil {
		t.Fatal("expected nil content to stay nil")
	}
}

func TestAPIPrefix(t *testing.T) {
	_, api := newTestAPI()
	if got := apiPrefix(api); got != "" {
		t.Fatalf("expected empty prefix, got %q", got)
	}

	api.OpenAPI().Servers = []*huma.Server{{URL: "https://example.com/solar"}}
	if got := apiPrefix(api); got != "/solar" {
		t.Fatalf("expected /solar, got %q", got)
	}
}
