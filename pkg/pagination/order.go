package pagination

import "strings"

// SortField is one (field, direction) pair of a multi-key sort.
type SortField struct {
	Field     string `json:"field"`
	Ascending bool   `json:"ascending"`
}

// Order is an ordered sort list; index 0 is the primary key.
type Order []SortField

// Asc and Desc are small constructors that keep literal orders readable.
func Asc(field string) SortField  { return SortField{Field: field, Ascending: true} }
func Desc(field string) SortField { return SortField{Field: field, Ascending: false} }

// Set records a direction for field and returns the updated list.
// A field that is already present keeps its position and takes the new direction.
// Blank names are ignored; stored names are trimmed.
func (o Order) Set(field string, ascending bool) Order {
	name := strings.TrimSpace(field)
	if name == "" {
		return o
	}
	for i := range o {
		if o[i].Field == name {
			o[i].Ascending = ascending
			return o
		}
	}
	return append(o, SortField{Field: name, Ascending: ascending})
}

// Fields lists the field names in precedence order.
func (o Order) Fields() []string {
	out := make([]string, 0, len(o))
	for _, f := range o {
		out = append(out, f.Field)
	}
	return out
}

// Direction reports the direction of field and whether it is present at all.
func (o Order) Direction(field string) (ascending bool, ok bool) {
	for _, f := range o {
		if f.Field == field {
			return f.Ascending, true
		}
	}
	return false, false
}

func (o Order) clone() Order {
	if len(o) == 0 {
		return nil
	}
	out := make(Order, len(o))
	copy(out, o)
	return out
}
