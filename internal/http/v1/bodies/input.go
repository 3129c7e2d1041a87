package bodies

import "github.com/janisto/solar-playground/internal/platform/pagination"

// ListInput defines query parameters for listing bodies.
type ListInput struct {
	pagination.Params
	Kind string `query:"kind" doc:"Filter by kind" example:"planet" enum:"star,planet"`
}

// GetInput identifies a single body.
type GetInput struct {
	Name string `path:"name" doc:"Body name, case-insensitive" example:"earth" minLength:"1" maxLength:"32"`
}
