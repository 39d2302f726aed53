package contact

import (
	"errors"
	"fmt"
)

// Sentinel errors for the contact service layer.
var (
	ErrNilContact = errors.New("contact is nil")
)

// Kind classifies a validation failure.
type Kind string

const (
	FieldRequired          Kind = "required"
	FieldTooLong           Kind = "too_long"
	FieldInvalidCharacters Kind = "invalid_characters"
	FieldInvalidFormat     Kind = "invalid_format"
	DuplicateContact       Kind = "duplicate"
)

// ValidationError is a user-facing message keyed to the field it concerns.
type ValidationError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Messages returns the human-readable text of each error, in order.
func Messages(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}
