package respond

import (
	"strconv"
	"strings"
)

// mediaRange is one entry of an Accept header.
type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. Types are lower
// cased, a bare type becomes type/*, and a missing or invalid q is 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		params := strings.Split(part, ";")
		mt := strings.ToLower(strings.TrimSpace(params[0]))
		if mt == "" {
			continue
		}
		typ, subtype, ok := strings.Cut(mt, "/")
		if !ok {
			subtype = "*"
		}
		mr := mediaRange{typ: strings.TrimSpace(typ), subtype: strings.TrimSpace(subtype), q: 1}
		for _, p := range params[1:] {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || strings.ToLower(strings.TrimSpace(k)) != "q" {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && q >= 0 && q <= 1 {
				mr.q = q
			} else {
				mr.q = 1
			}
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity ranks how precisely mr names a problem body in format
// (json or cbor). Zero means no match.
func (mr mediaRange) specificity(format string) int {
	switch {
	case mr.typ == "*" && mr.subtype == "*":
		return 1
	case mr.typ != "application":
		return 0
	case mr.subtype == "*":
		return 2
	case mr.subtype == "*+"+format:
		return 3
	case mr.subtype == format:
		return 4
	case mr.subtype == "problem+"+format:
		return 5
	}
	return 0
}

// preference returns the q value of the most specific range matching format
// together with that specificity.
func preference(ranges []mediaRange, format string) (q float64, spec int) {
	for _, mr := range ranges {
		s := mr.specificity(format)
		if s > spec || (s == spec && s > 0 && mr.q > q) {
			q, spec = mr.q, s
		}
	}
	return q, spec
}

// selectFormat reports whether CBOR should be used for the given Accept header.
// The higher q value wins and specificity breaks ties; JSON is the default.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return false
	}
	cborQ, cborSpec := preference(ranges, "cbor")
	jsonQ, jsonSpec := preference(ranges, "json")
	if cborQ <= 0 {
		return false
	}
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return cborSpec > jsonSpec
}
