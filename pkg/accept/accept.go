// Package accept picks a response media type from the request's Accept header.
package accept

import (
	"net/http"
	"sort"
	"strings"

	"github.com/vfaronov/httpheader"
)

// Types is the parsed Accept header, most preferred first.
type Types []httpheader.AcceptElem

// Parse reads every Accept header line of h. Entries with equal quality keep
// the order the client sent them in; q=0 entries are dropped.
func Parse(h http.Header) Types {
	elems := httpheader.Accept(h)
	out := make(Types, 0, len(elems))
	for _, e := range elems {
		if e.Q > 0 {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Q > out[j].Q })
	return out
}

// FromRequest is Parse(r.Header).
func FromRequest(r *http.Request) Types {
	return Parse(r.Header)
}

// Preferred returns the candidate the client likes best.
//
// Accepted types are visited in preference order. An exact match wins,
// */* selects the first candidate, and type/* selects the first candidate of
// that type. ok is false when nothing matches or candidates is empty.
func (t Types) Preferred(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	for _, e := range t {
		typ := strings.ToLower(e.Type)
		for _, c := range candidates {
			if strings.EqualFold(c, typ) {
				return c, true
			}
		}
		if typ == "*/*" {
			return candidates[0], true
		}
		if len(typ) > 2 && strings.HasSuffix(typ, "/*") {
			prefix := typ[:strings.Index(typ, "/")+1]
			for _, c := range candidates {
				if strings.HasPrefix(strings.ToLower(c), prefix) {
					return c, true
				}
			}
		}
	}
	return "", false
}
