package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/forms"
)

// A ValidationError is one field whose submitted value broke the rule set on it.
type ValidationError struct {
	// Field is the request key for the value, as resolved from struct tags.
	Field string `json:"field"`

	// Got is the offending value as submitted.
	Got any `json:"got"`

	// Rule names the violated constraint and the Go type it guards, e.g. "max=150; int".
	Rule string `json:"rule,omitempty"`
}

func (v ValidationError) String() string {
	return fmt.Sprintf("%s: rule %q rejected %q", v.Field, v.Rule, fmt.Sprint(v.Got))
}

// ValidationErrors collects every field that failed validation in one pass,
// so a client can surface all problems at once instead of one per submission.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.String())
	}

	return strings.Join(msgs, "; ")
}

// MarshalJSON renders the set under a "validationErrors" key,
// the shape the default error handler responds 422 with.
func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	errs.E = append(errs.E, v...)
	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return forms.ErrNotValid }
