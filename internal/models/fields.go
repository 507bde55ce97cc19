package models

import "dailies/internal/validation"

// Fields is a decoded JSON object as supplied by a client. A key mapped to
// nil was sent as an explicit null.
type Fields map[string]any

const (
	FieldID       = "id"
	FieldName     = "name"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldHabits   = "habits"
	FieldUserID   = "user_id"
)

func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Without returns a shallow copy of f minus the given keys.
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// strings reads the present keys among keys as nullable strings. Values of
// any other JSON type are reported together in one validation error.
func (f Fields) strings(keys ...string) (map[string]*string, error) {
	values := make(map[string]*string, len(keys))
	var invalid []string

	for _, key := range keys {
		raw, ok := f[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case nil:
			values[key] = nil
		case string:
			values[key] = &v
		default:
			invalid = append(invalid, key)
		}
	}

	if len(invalid) > 0 {
		return nil, validation.InvalidFields(invalid)
	}
	return values, nil
}
