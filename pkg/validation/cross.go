package validation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-wizard/pkg/model"
)

// PriceOrder enforces low ≤ medium ≤ high across three numeric fields. The
// issue is reported on the lowest field that breaks the order, matching the
// tier the user needs to correct.
func PriceOrder(lowField, mediumField, highField string) CrossFieldFunc {
	return func(values model.FormValues) []Issue {
		low, okLow := asFloat(values[lowField])
		medium, okMedium := asFloat(values[mediumField])
		high, okHigh := asFloat(values[highField])

		var issues []Issue
		if okLow && okMedium && low > medium {
			issues = append(issues, Issue{
				Field:   lowField,
				Message: fmt.Sprintf("low season price must not exceed the medium season price (%v > %v)", low, medium),
			})
		}
		if okMedium && okHigh && medium > high {
			issues = append(issues, Issue{
				Field:   mediumField,
				Message: fmt.Sprintf("medium season price must not exceed the high season price (%v > %v)", medium, high),
			})
		}
		return issues
	}
}

// DateOrder enforces from ≤ to for two date fields in the given layout.
// Unparsable values are left alone; per-field tags report those.
func DateOrder(fromField, toField, layout string) CrossFieldFunc {
	return func(values model.FormValues) []Issue {
		from, okFrom := asTime(values[fromField], layout)
		to, okTo := asTime(values[toField], layout)
		if !okFrom || !okTo {
			return nil
		}
		if from.After(to) {
			return []Issue{{
				Field:   fromField,
				Message: "start date must not be after the end date",
			}}
		}
		return nil
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func asTime(value any, layout string) (time.Time, bool) {
	s, ok := value.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, s)
	return t, err == nil
}
