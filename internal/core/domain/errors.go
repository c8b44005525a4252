package domain

import (
	"errors"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("unauthorized")
	ErrEmailTaken      = errors.New("email is already in use")
	ErrUserNotFound    = errors.New("user not found")
	ErrBadRequest      = errors.New("all fields are required")
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return "validation failed"
	}
	return strings.Join(msgs, "; ")
}

// Messages returns the per-field messages in input order.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}
