package validation

import "github.com/goliatone/go-wizard/pkg/model"

// Issue is one field-level validation error.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result captures the outcome of validating one step's slice of the
// accumulated form values.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Messages flattens the issues into user-facing strings.
func (r Result) Messages() []string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		out = append(out, issue.Message)
	}
	return out
}

// FieldMessages indexes the first message per field.
func (r Result) FieldMessages() map[string]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		if _, exists := out[issue.Field]; !exists {
			out[issue.Field] = issue.Message
		}
	}
	return out
}

// Schema validates the accumulated form values for one step.
type Schema interface {
	Validate(values model.FormValues) Result
}
