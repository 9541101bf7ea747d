package service

import (
	"fmt"
	"strings"
)

// Characters that cannot survive inside a query parameter name unescaped.
const reservedNameChars = "&=#?()[] "

func validateSettings(s Settings) error {
	var ferrs []FieldError

	if name := s.SortParameter; name != "" && strings.ContainsAny(name, reservedNameChars) {
		ferrs = append(ferrs, FieldError{Field: "sort_parameter", Message: "must not contain any of " + reservedNameChars})
	}

	seen := make(map[string]struct{}, len(s.DefaultOrder))
	for i, f := range s.DefaultOrder {
		field := fmt.Sprintf("default_order[%d].field", i)
		name := strings.TrimSpace(f.Field)
		if name == "" {
			ferrs = append(ferrs, FieldError{Field: field, Message: "must not be empty"})
			continue
		}
		if _, dup := seen[name]; dup {
			ferrs = append(ferrs, FieldError{Field: field, Message: "duplicates " + name})
			continue
		}
		seen[name] = struct{}{}
	}

	return NewInvalidInput(ferrs)
}
