package data

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/solar-playground/internal/platform/logging"
)

// Register wires the data route into api below prefix.
func Register(api huma.API, prefix string) {
	path := prefix + "/data"
	huma.Register(api, huma.Operation{
		OperationID: "get-data",
		Method:      http.MethodGet,
		Path:        path,
		Summary:     "Get the fixed data payload",
		Description: `Always returns {"message": "helllo"}. The endpoint takes no input and has no side effects.`,
		Tags:        []string{"Data"},
	}, func(ctx context.Context, _ *struct{}) (*GetOutput, error) {
		applog.LogInfo(ctx, "data get", zap.String("path", path))
		return &GetOutput{Body: Data{Message: Message}}, nil
	})
}
