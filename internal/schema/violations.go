package schema

import (
	"errors"
	"fmt"

	"dynsheet/record"
)

// Violation is one failed field rule.
type Violation struct {
	Field   record.FieldKey
	Message string
}

// Error returns the display message.
func (v Violation) Error() string {
	return v.Message
}

// Violations is the error returned when a row breaks one or more rules.
// Entries follow the column declaration order of the row's target.
type Violations []Violation

// Error returns a compact summary of the violations.
func (v Violations) Error() string {
	switch len(v) {
	case 0:
		return "no violations"
	case 1:
		return v[0].Message
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Message, len(v)-1)
	}
}

// Messages returns the display messages in order.
func (v Violations) Messages() []string {
	out := make([]string, len(v))
	for i, vi := range v {
		out[i] = vi.Message
	}

	return out
}

// AsViolations extracts the violations from an error returned by Validate.
// It reports false for internal faults.
func AsViolations(err error) (Violations, bool) {
	if err == nil {
		return nil, false
	}

	var list Violations
	if errors.As(err, &list) {
		return list, true
	}

	return nil, false
}
