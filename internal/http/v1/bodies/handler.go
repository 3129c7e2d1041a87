package bodies

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/solar-playground/internal/platform/logging"
	"github.com/janisto/solar-playground/internal/platform/pagination"
	"github.com/janisto/solar-playground/internal/solar"
)

const cursorKind = "body"

// Register wires the body catalog routes into api below prefix. linkBase is
// prepended to paths written into Link headers.
func Register(api huma.API, prefix, linkBase string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-bodies",
		Method:      http.MethodGet,
		Path:        prefix + "/bodies",
		Summary:     "List bodies of the solar system",
		Description: "Returns the Sun and the planets in order of distance. Use the cursor from the Link header to navigate between pages.",
		Tags:        []string{"Bodies"},
	}, func(ctx context.Context, input *ListInput) (*ListOutput, error) {
		cursor, err := pagination.DecodeFor(input.Cursor, cursorKind)
		if err != nil {
			applog.LogWarn(ctx, "rejected cursor", zap.Error(err))
			return nil, huma.Error400BadRequest("invalid cursor", err)
		}

		query := url.Values{}
		if input.Kind != "" {
			query.Set("kind", input.Kind)
		}
		page, err := pagination.Paginate(
			solar.Filter(solar.Kind(input.Kind)),
			cursor,
			input.PageSize(),
			func(b solar.Body) string { return b.Name },
			pagination.Options{Kind: cursorKind, Path: linkBase + prefix + "/bodies", Query: query},
		)
		if err != nil {
			applog.LogWarn(ctx, "rejected cursor", zap.Error(err))
			return nil, huma.Error400BadRequest("cursor references unknown body", err)
		}

		items := make([]Body, 0, len(page.Items))
		for _, b := range page.Items {
			items = append(items, fromCatalog(b))
		}
		return &ListOutput{
			Link: page.Link,
			Body: ListData{Items: items, Total: page.Total},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-body",
		Method:      http.MethodGet,
		Path:        prefix + "/bodies/{name}",
		Summary:     "Get a body by name",
		Tags:        []string{"Bodies"},
	}, func(ctx context.Context, input *GetInput) (*GetOutput, error) {
		b, err := solar.Lookup(input.Name)
		if errors.Is(err, solar.ErrUnknownBody) {
			return nil, huma.Error404NotFound("body not found")
		}
		if err != nil {
			applog.LogError(ctx, "body lookup failed", err, zap.String("name", input.Name))
			return nil, huma.Error500InternalServerError("internal server error")
		}
		return &GetOutput{Body: fromCatalog(b)}, nil
	})
}
