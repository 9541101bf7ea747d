// Package querystring splits raw query strings without losing repeated names.
//
// Both param=foo&param=bar and param[]=foo&param[]=bar end up as
// param: [foo bar]. Unlike url.ParseQuery, a bad escape in one pair does not
// discard the rest of the query, and the [] suffix used by PHP-style clients
// is folded into the plain name.
package querystring

import (
	"net/http"
	"net/url"
	"strings"
)

// Parse splits raw into names and values, keeping every value in request order.
// A leading "?" is ignored, a pair without "=" gets the empty value, and text
// that cannot be unescaped is kept as written.
func Parse(raw string) url.Values {
	params := url.Values{}
	raw = strings.TrimPrefix(raw, "?")
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		name = strings.TrimSuffix(unescape(name), "[]")
		params[name] = append(params[name], unescape(value))
	}
	return params
}

// FromRequest parses the raw query of r.
func FromRequest(r *http.Request) url.Values {
	if r == nil || r.URL == nil {
		return url.Values{}
	}
	return Parse(r.URL.RawQuery)
}

// Get returns every value bound to name, or an empty slice.
func Get(params url.Values, name string) []string {
	if vals, ok := params[name]; ok {
		return vals
	}
	return []string{}
}

func unescape(s string) string {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return out
}
