package data

// Message is the fixed value served by GET /api/data. The spelling is part of
// the public contract.
const Message = "helllo"

// Data models the response payload of the data endpoint.
type Data struct {
	Message string `json:"message" doc:"Fixed message" example:"helllo"`
}

// GetOutput wraps Data as the response body.
type GetOutput struct {
	Body Data
}
