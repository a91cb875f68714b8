package model

import "fmt"

// FieldError describes a single invalid or missing input field. Validation
// failures are returned as values, never panics, so callers can surface
// them as user-facing messages.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// JoinFieldErrors renders a field-error list as one message.
func JoinFieldErrors(errs []FieldError) string {
	msg := ""
	for i, e := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return msg
}
