package pagination

// RangeConvention names the way a request expressed its page window.
type RangeConvention string

const (
	RangeNone       RangeConvention = "none"
	RangeHeader     RangeConvention = "range_header"
	RangeLimitOnly  RangeConvention = "limit"
	RangeOffset     RangeConvention = "offset"
	RangeStartIndex RangeConvention = "start_index"
	RangePage       RangeConvention = "page"
)

// SortConvention names the way a request expressed its sort order.
type SortConvention string

const (
	SortNone    SortConvention = "none"
	SortDefault SortConvention = "default"
	SortGrails  SortConvention = "grails"
	SortJSON    SortConvention = "extjs_json"
	SortSuffix  SortConvention = "suffix"
	SortSigned  SortConvention = "signed"
	SortDojo    SortConvention = "dojo"
	SortMixed   SortConvention = "mixed"
)

// Descriptor is a parsed Window together with the conventions it was read from.
type Descriptor struct {
	Window Window          `json:"window"`
	Range  RangeConvention `json:"range"`
	Sort   SortConvention  `json:"sort"`
}
