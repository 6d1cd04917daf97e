package model

import (
	"fmt"
	"strings"
)

// FormValues maps field names to their current values for one wizard session.
// It accumulates across steps; values entered on step one remain present while
// editing step three.
type FormValues map[string]any

// Clone returns a shallow copy so callers can snapshot state without aliasing
// the live map.
func (v FormValues) Clone() FormValues {
	if v == nil {
		return nil
	}
	out := make(FormValues, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// String returns the value under name rendered as a string, or "" when the
// value is absent or nil.
func (v FormValues) String(name string) string {
	value, ok := v[name]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return stringify(value)
}

// Pick returns a new FormValues holding only the named fields. Absent names
// are skipped so payload shaping never invents keys.
func (v FormValues) Pick(names ...string) FormValues {
	out := make(FormValues, len(names))
	for _, name := range names {
		if value, ok := v[name]; ok {
			out[name] = value
		}
	}
	return out
}

// IsEmptyValue reports whether a value counts as "not provided": nil, the
// empty string (after trimming), or an empty slice. Numeric zero is a real
// value and is not empty.
func IsEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	}
	return false
}

func stringify(value any) string {
	return fmt.Sprint(value)
}
