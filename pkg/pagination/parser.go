package pagination

import (
	"math"
	"regexp"
	"sort"
	"strconv"
)

// Values maps a query parameter name to every value bound to it, in request
// order. url.Values satisfies it directly.
type Values = map[string][]string

// HeaderFunc looks up a single request header; "" means absent.
// http.Header.Get has this shape.
type HeaderFunc func(name string) string

var (
	rangeHeaderRe = regexp.MustCompile(`^items=(\d+)-(\d+)$`)
	dojoSortRe    = regexp.MustCompile(`^sort\((.*)\)$`)
)

// Parser derives a Window from query parameters and headers.
// It holds only read-only settings and is safe for concurrent use.
type Parser struct {
	sortParam    string
	defaultOrder Order
}

// Option customizes a Parser.
type Option func(*Parser)

// WithSortParameter changes the query parameter that carries the sort order.
// Blank names are ignored.
func WithSortParameter(name string) Option {
	return func(p *Parser) {
		if name != "" {
			p.sortParam = name
		}
	}
}

// WithDefaultOrder sets the order used when a request carries no sort information.
func WithDefaultOrder(order Order) Option {
	return func(p *Parser) {
		var o Order
		for _, f := range order {
			o = o.Set(f.Field, f.Ascending)
		}
		p.defaultOrder = o
	}
}

// NewParser returns a parser reading sorts from "sort" with no default order
// unless options say otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{sortParam: ParamSort}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Create parses q and h with the default parser settings.
func Create(q Values, h HeaderFunc) Window {
	return defaultParser.Create(q, h)
}

// SortParameter returns the configured sort parameter name.
func (p *Parser) SortParameter() string { return p.sortParam }

// DefaultOrder returns a copy of the configured fallback order.
func (p *Parser) DefaultOrder() Order { return p.defaultOrder.clone() }

// Create returns the normalized window described by the request.
// It never fails: anything unrecognized falls back to all rows, offset 0
// and the default order.
func (p *Parser) Create(q Values, h HeaderFunc) Window {
	return p.Inspect(q, h).Window
}

// Inspect is Create plus the conventions that were recognized.
func (p *Parser) Inspect(q Values, h HeaderFunc) Descriptor {
	max, offset, rc := p.parseRange(q, h)
	order, sc := p.parseOrder(q)
	if len(order) == 0 {
		order = p.defaultOrder
		if len(order) > 0 {
			sc = SortDefault
		} else {
			sc = SortNone
		}
	}
	return Descriptor{
		Window: New(max, offset, order),
		Range:  rc,
		Sort:   sc,
	}
}

func (p *Parser) parseRange(q Values, h HeaderFunc) (max, offset int, conv RangeConvention) {
	if h != nil {
		if m := rangeHeaderRe.FindStringSubmatch(h(HeaderRange)); m != nil {
			start, err1 := strconv.Atoi(m[1])
			end, err2 := strconv.Atoi(m[2])
			if err1 == nil && err2 == nil {
				return end - start + 1, start, RangeHeader
			}
		}
	}

	max, conv = Unbounded, RangeNone
	if n, ok := firstInt(q, maxAliases); ok {
		max, conv = n, RangeLimitOnly
	}

	off, hasOffset := firstInt(q, offsetAliases)
	if hasOffset && off > 0 {
		return max, off, RangeOffset
	}
	if idx, ok := intParam(q, ParamStartIndex); ok && idx > 0 {
		return max, idx - 1, RangeStartIndex
	}
	if page, ok := firstInt(q, pageAliases); ok && page > 0 {
		return max, pageOffset(max, page), RangePage
	}
	if hasOffset {
		conv = RangeOffset
	}
	return max, 0, conv
}

// pageOffset converts a 1-based page into a row offset, saturating at
// math.MaxInt instead of wrapping when max is Unbounded.
func pageOffset(max, page int) int {
	n := page - 1
	if n == 0 || max <= 0 {
		return 0
	}
	if n > math.MaxInt/max {
		return math.MaxInt
	}
	return max * n
}

func (p *Parser) parseOrder(q Values) (Order, SortConvention) {
	var order Order
	values, ok := q[p.sortParam]
	if !ok {
		return parseDojoNames(q)
	}

	if orderVals, grails := q[ParamOrder]; grails {
		field := first(values)
		direction := first(orderVals)
		return order.Set(field, !isDesc(direction)), SortGrails
	}

	conv := SortNone
	for _, v := range values {
		var c SortConvention
		order, c = parseSortValue(v, order)
		conv = merge(conv, c)
	}
	return order, conv
}

// parseDojoNames handles sort(+foo,-bar), where the sort lives in the
// parameter name. Names are visited in lexical order.
func parseDojoNames(q Values) (Order, SortConvention) {
	var names []string
	for name := range q {
		if dojoSortRe.MatchString(name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, SortNone
	}
	sort.Strings(names)

	var order Order
	for _, name := range names {
		m := dojoSortRe.FindStringSubmatch(name)
		order, _ = parseSortValue(m[1], order)
	}
	return order, SortDojo
}

func merge(a, b SortConvention) SortConvention {
	switch {
	case b == SortNone || a == b:
		return a
	case a == SortNone:
		return b
	default:
		return SortMixed
	}
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
