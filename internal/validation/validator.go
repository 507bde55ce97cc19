package validation

import (
	"fmt"
	"strings"
)

type Kind string

const (
	User  Kind = "user"
	Habit Kind = "habit"
)

var mandatoryFields = map[Kind][]string{
	User:  {"name", "email", "password"},
	Habit: {"name"},
}

// Error is returned when a payload fails validation. Fields lists the
// offending keys in a stable order.
type Error struct {
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	return e.Message
}

func MissingFields(fields []string) *Error {
	return &Error{
		Message: fmt.Sprintf("Missing mandatory fields: %s", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

func InvalidFields(fields []string) *Error {
	return &Error{
		Message: fmt.Sprintf("Invalid value for fields: %s", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

func MandatoryFields(kind Kind) []string {
	fields := mandatoryFields[kind]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Validate reports every mandatory field of kind that is absent from fields.
// A key holding nil is present.
func Validate(kind Kind, fields map[string]any) error {
	mandatory, ok := mandatoryFields[kind]
	if !ok {
		return fmt.Errorf("unknown entity kind %q", kind)
	}

	var missing []string
	for _, field := range mandatory {
		if _, ok := fields[field]; !ok {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return MissingFields(missing)
	}
	return nil
}
