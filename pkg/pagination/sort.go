package pagination

import (
	"encoding/json"
	"strings"
)

const desc = "desc"

// sortStep tries one grammar on a trimmed sort value. matched is false when the
// value is not written in that grammar and the next step should run.
type sortStep func(value string, into Order) (out Order, matched bool)

type sortGrammar struct {
	convention SortConvention
	parse      sortStep
}

// Checked in order; the signed list always matches and ends the chain.
var sortGrammars = []sortGrammar{
	{SortJSON, parseJSONSort},
	{SortSuffix, parseSuffixSort},
	{SortSigned, parseSignedSort},
}

type suffixRule struct {
	suffix    string
	ascending bool
}

var suffixRules = []suffixRule{
	{",asc", true},
	{",desc", false},
	{":ascending", true},
	{":descending", false},
}

// parseSortValue appends the fields encoded in one sort value to into.
// A blank value contributes nothing and reports SortNone.
func parseSortValue(value string, into Order) (Order, SortConvention) {
	v := strings.TrimSpace(value)
	if v == "" {
		return into, SortNone
	}
	for _, g := range sortGrammars {
		if out, ok := g.parse(v, into); ok {
			return out, g.convention
		}
	}
	return into, SortNone
}

type jsonSort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// parseJSONSort reads the ExtJS form: [{"property":"foo","direction":"asc"}].
// Elements that are not objects are skipped; invalid JSON is not a match.
func parseJSONSort(v string, into Order) (Order, bool) {
	if !strings.HasPrefix(v, "[") {
		return into, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(v), &elems); err != nil {
		return into, false
	}
	for _, raw := range elems {
		var s jsonSort
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		into = into.Set(s.Property, !isDesc(s.Direction))
	}
	return into, true
}

// parseSuffixSort reads the single-field Spring Data (foo,desc) and
// OpenSearch extension (foo:descending) forms.
func parseSuffixSort(v string, into Order) (Order, bool) {
	for _, r := range suffixRules {
		if strings.HasSuffix(v, r.suffix) {
			return into.Set(strings.TrimSuffix(v, r.suffix), r.ascending), true
		}
	}
	return into, false
}

// parseSignedSort reads comma separated fields with optional +/- prefixes.
// A bare field is ascending.
func parseSignedSort(v string, into Order) (Order, bool) {
	for _, token := range strings.Split(v, ",") {
		token = strings.TrimSpace(token)
		switch {
		case strings.HasPrefix(token, "-"):
			into = into.Set(token[1:], false)
		case strings.HasPrefix(token, "+"):
			into = into.Set(token[1:], true)
		default:
			into = into.Set(token, true)
		}
	}
	return into, true
}

// isDesc folds ASCII case only; sort tokens are never localized.
func isDesc(direction string) bool {
	return strings.ToLower(direction) == desc
}
