package payload

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedKind is returned when the requested payload type is not
	// one of the recognized variants.
	ErrUnsupportedKind = errors.New("unsupported payload type")

	// ErrMeCardIdentity is returned when a mecard request supplies neither a
	// full name nor any name half.
	ErrMeCardIdentity = errors.New(`provide "name" or both "first_name" and "last_name" for mecard`)
)

// MissingFieldsError reports required data fields that are absent or empty
// for the requested payload kind.
type MissingFieldsError struct {
	Kind   Kind
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing fields for %s: %s", e.Kind, strings.Join(e.Fields, ", "))
}

// InvalidFieldError reports a data field whose value cannot be used.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
