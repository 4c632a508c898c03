package respond

import (
	"strconv"
	"strings"
)

type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges. A missing or
// invalid q value counts as 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		mr := mediaRange{q: 1}
		media := strings.ToLower(strings.TrimSpace(params[0]))
		if typ, sub, ok := strings.Cut(media, "/"); ok {
			mr.typ, mr.subtype = typ, sub
		} else {
			mr.typ, mr.subtype = media, "*"
		}
		for _, p := range params[1:] {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(k), "q") {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && q >= 0 && q <= 1 {
				mr.q = q
			}
		}
		ranges = append(ranges, mr)
	}
	return ranges
}

// names reports whether the range names format explicitly: application/<f>,
// application/problem+<f> or a structured suffix wildcard like application/*+<f>.
func (m mediaRange) names(format string) bool {
	if m.typ != "application" {
		return false
	}
	return m.subtype == format || strings.HasSuffix(m.subtype, "+"+format)
}

func (m mediaRange) wildcard() bool {
	return m.subtype == "*" && (m.typ == "*" || m.typ == "application")
}

// selectFormat reports whether CBOR should be used for the given Accept
// header. Wildcards resolve to JSON; CBOR must be named explicitly and win
// on q value, or tie with JSON while being listed first.
func selectFormat(accept string) bool {
	jsonQ, cborQ := -1.0, -1.0
	jsonFirst, cborFirst := -1, -1
	for i, mr := range parseAccept(accept) {
		switch {
		case mr.names("cbor"):
			cborQ = max(cborQ, mr.q)
			if cborFirst < 0 {
				cborFirst = i
			}
		case mr.names("json"):
			jsonQ = max(jsonQ, mr.q)
			if jsonFirst < 0 {
				jsonFirst = i
			}
		case mr.wildcard():
			jsonQ = max(jsonQ, mr.q)
		}
	}
	if cborQ <= 0 {
		return false
	}
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return jsonFirst < 0 || cborFirst < jsonFirst
}
