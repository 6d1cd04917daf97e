package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-wizard/pkg/model"
)

// Single validator instance; validator.New caches tag parsing internally.
var validate = validator.New()

// CrossFieldFunc checks constraints that span multiple fields (pricing tier
// order, date windows). It returns issues attached to the offending field.
type CrossFieldFunc func(values model.FormValues) []Issue

// Rules is the Schema implementation used by the built-in registries. It
// derives a required check per descriptor from the step itself, then layers
// per-field validator tags and cross-field funcs on top.
type Rules struct {
	step  model.StepDescriptor
	tags  map[string]string
	cross []CrossFieldFunc
}

// FromStep builds the base rules for a step: every field the descriptor marks
// required yields an issue when its value is empty.
func FromStep(step model.StepDescriptor) *Rules {
	return &Rules{
		step: step,
		tags: make(map[string]string),
	}
}

// Tag attaches a validator tag expression to a named field. Tags run only
// against non-empty values; required handling stays descriptor-driven.
func (r *Rules) Tag(field, tag string) *Rules {
	r.tags[field] = tag
	return r
}

// Cross appends cross-field checks, run after the per-field pass.
func (r *Rules) Cross(fns ...CrossFieldFunc) *Rules {
	r.cross = append(r.cross, fns...)
	return r
}

// Validate implements Schema. Field order follows the step descriptor so
// issue ordering is stable.
func (r *Rules) Validate(values model.FormValues) Result {
	var issues []Issue

	for _, field := range r.step.Fields {
		value, present := values[field.Name]
		empty := !present || model.IsEmptyValue(value)

		if field.Required && empty {
			issues = append(issues, Issue{
				Field:   field.Name,
				Message: fmt.Sprintf("%s is required", labelFor(field)),
			})
			continue
		}
		if empty {
			continue
		}

		tag, ok := r.tags[field.Name]
		if !ok || tag == "" {
			continue
		}
		if err := validate.Var(value, tag); err != nil {
			issues = append(issues, issueFromValidator(field, err))
		}
	}

	for _, fn := range r.cross {
		if fn == nil {
			continue
		}
		issues = append(issues, fn(values)...)
	}

	return Result{Valid: len(issues) == 0, Issues: issues}
}

func labelFor(field model.FieldDescriptor) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func issueFromValidator(field model.FieldDescriptor, err error) Issue {
	label := labelFor(field)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Issue{Field: field.Name, Message: fmt.Sprintf("%s is invalid", label)}
	}

	fe := verrs[0]
	var message string
	switch fe.Tag() {
	case "gt":
		message = fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "gte", "min":
		message = fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "lt":
		message = fmt.Sprintf("%s must be less than %s", label, fe.Param())
	case "lte", "max":
		message = fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "oneof":
		message = fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "numeric":
		message = fmt.Sprintf("%s must be a number", label)
	case "datetime":
		message = fmt.Sprintf("%s must be a valid date (%s)", label, fe.Param())
	case "e164":
		message = fmt.Sprintf("%s must be a valid phone number", label)
	default:
		message = fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
	return Issue{Field: field.Name, Message: message}
}
