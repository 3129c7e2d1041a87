package pagination

const (
	// DefaultLimit is the page size used when no limit is given.
	DefaultLimit = 20
	// MaxLimit caps the page size.
	MaxLimit = 100
)

// Params embeds into Huma input structs for pagination.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from a previous Link header"`
	Limit  int    `query:"limit"  doc:"Maximum items per page"                                default:"20" minimum:"1" maximum:"100"`
}

// PageSize returns Limit clamped to 1..MaxLimit, DefaultLimit when unset.
func (p Params) PageSize() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	}
	return p.Limit
}
