package pagination

import "strconv"

// Parameter names understood by the parser.
const (
	ParamSort       = "sort"
	ParamOrder      = "order"
	ParamPage       = "page"
	ParamStartPage  = "startPage"
	ParamStartIndex = "startIndex"
	ParamStart      = "start"
	ParamCount      = "count"
	ParamMax        = "max"
	ParamLimit      = "limit"
	ParamOffset     = "offset"

	HeaderRange = "Range"
)

var (
	maxAliases    = []string{ParamMax, ParamLimit, ParamCount}
	offsetAliases = []string{ParamStart, ParamOffset}
	pageAliases   = []string{ParamPage, ParamStartPage}
)

// firstInt returns the first alias whose first value is a base-10 integer.
// Missing and non-numeric parameters are skipped.
func firstInt(q Values, names []string) (int, bool) {
	for _, name := range names {
		if n, ok := intParam(q, name); ok {
			return n, true
		}
	}
	return 0, false
}

func intParam(q Values, name string) (int, bool) {
	vals, ok := q[name]
	if !ok || len(vals) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(vals[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
