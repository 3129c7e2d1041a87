package bodies

// ListData is the response body containing a page of bodies.
type ListData struct {
	Items []Body `json:"items" doc:"Bodies in catalog order"`
	Total int    `json:"total" doc:"Total count of bodies matching the filter" example:"10"`
}

// ListOutput is the response wrapper with pagination Link header.
type ListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// GetOutput wraps a single body.
type GetOutput struct {
	Body Body
}
