package domain

import "strings"

// ValidationError represents one or more field-level rule violations on
// order submission. All rules are evaluated before the error is returned,
// so Violations carries every failed rule, not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}
