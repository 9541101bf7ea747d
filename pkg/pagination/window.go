// Package pagination turns the many ad-hoc ways clients ask for "a page of rows,
// sorted like this" into a single Window value.
//
// Supported range conventions:
//   - max + offset (Grails): &max=25&offset=0
//   - count + start (dojox.data.QueryReadStore): &count=25&start=0
//   - Range header (dojo.store.JsonRest): Range: items=0-24
//   - count + startIndex (OpenSearch, 1-based): &count=25&startIndex=1
//   - count + startPage (OpenSearch, 1-based): &count=25&startPage=1
//   - limit + page (Spring Data REST, 1-based): &limit=25&page=1
//   - limit + start (ExtJS): &limit=25&start=0
//
// Supported sort conventions:
//   - OpenSearchServer: &sort=foo&sort=-bar
//   - OpenSearch extension: &sort=foo:ascending&sort=bar:descending
//   - Grails: &sort=foo&order=asc
//   - Spring Data REST: &sort=foo,asc&sort=bar,desc
//   - Dojo: &sort(+foo,-bar)
//   - ExtJS JSON: &sort=[{"property":"foo","direction":"asc"}]
package pagination

import (
	"encoding/json"
	"math"
)

// Unbounded is the max row count meaning "all rows".
const Unbounded = math.MaxInt

// Window is an immutable page window: a row cap, a row offset and a sort list.
// Construct it with New; the zero value is not normalized.
type Window struct {
	max    int
	offset int
	order  Order
}

// New builds a normalized Window.
// max below 1 becomes Unbounded, offset below 1 becomes 0, and sort entries
// with a blank field are dropped. Repeated fields keep their first position
// and the last direction given.
func New(max, offset int, order Order) Window {
	if max < 1 {
		max = Unbounded
	}
	if offset < 1 {
		offset = 0
	}
	var normalized Order
	for _, f := range order {
		normalized = normalized.Set(f.Field, f.Ascending)
	}
	return Window{max: max, offset: offset, order: normalized}
}

// Max returns the maximum number of rows to return.
func (w Window) Max() int { return w.max }

// Offset returns the zero-based row offset.
func (w Window) Offset() int { return w.offset }

// Order returns a copy of the sort list.
func (w Window) Order() Order { return w.order.clone() }

// IsUnbounded reports whether the window asks for all remaining rows.
func (w Window) IsUnbounded() bool { return w.max == Unbounded }

// End returns the zero-based index one past the last row in the window,
// saturating at math.MaxInt.
func (w Window) End() int {
	if w.max > math.MaxInt-w.offset {
		return math.MaxInt
	}
	return w.offset + w.max
}

// Equal reports whether two windows describe the same page and sort.
func (w Window) Equal(other Window) bool {
	if w.max != other.max || w.offset != other.offset || len(w.order) != len(other.order) {
		return false
	}
	for i := range w.order {
		if w.order[i] != other.order[i] {
			return false
		}
	}
	return true
}

type windowJSON struct {
	MaxRows int         `json:"maxRows"`
	Offset  int         `json:"offset"`
	Order   []SortField `json:"order"`
}

// MarshalJSON renders the canonical {maxRows, offset, order} shape.
func (w Window) MarshalJSON() ([]byte, error) {
	order := w.order
	if order == nil {
		order = Order{}
	}
	return json.Marshal(windowJSON{MaxRows: w.max, Offset: w.offset, Order: order})
}
