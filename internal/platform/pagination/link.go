package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader renders an RFC 8288 Link header with next and prev
// relations. Query parameters are kept and cursor is replaced.
func BuildLinkHeader(path string, query url.Values, next, prev string) string {
	var links []string
	for _, l := range []struct{ rel, cursor string }{{"next", next}, {"prev", prev}} {
		if l.cursor == "" {
			continue
		}
		q := cloneValues(query)
		q.Set("cursor", l.cursor)
		links = append(links, fmt.Sprintf("<%s?%s>; rel=%q", path, q.Encode(), l.rel))
	}
	return strings.Join(links, ", ")
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
