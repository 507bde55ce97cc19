package models

import "dailies/internal/validation"

// User owns its habits through habits.user_id. Nullable columns are
// pointers so an explicit null reaches the database and is rejected there.
type User struct {
	ID       int64   `json:"id" db:"id"`
	Username *string `json:"username" db:"username"`
	Email    *string `json:"email" db:"email"`
	Password *string `json:"-" db:"password"`
	Habits   []Habit `json:"habits"`
}

// NewUser builds an unsaved user and its inline habits. Every nested habit
// is validated before the user fields; any failure discards the whole user.
func NewUser(fields Fields) (*User, error) {
	habits := []Habit{}

	if raw, ok := fields[FieldHabits]; ok && raw != nil {
		items, ok := raw.([]any)
		if !ok {
			return nil, validation.InvalidFields([]string{FieldHabits})
		}
		for _, item := range items {
			habitFields, ok := item.(map[string]any)
			if !ok {
				return nil, validation.InvalidFields([]string{FieldHabits})
			}
			habit, err := NewHabit(habitFields, 0)
			if err != nil {
				return nil, err
			}
			habits = append(habits, *habit)
		}
	}

	userFields := fields.Without(FieldHabits)
	if err := validation.Validate(validation.User, userFields); err != nil {
		return nil, err
	}

	user := &User{Habits: habits}
	if err := user.Apply(userFields); err != nil {
		return nil, err
	}
	return user, nil
}

// Update re-validates the payload against the full mandatory set before
// applying it: callers must resend name, email and password on every update.
func (u *User) Update(fields Fields) error {
	if err := validation.Validate(validation.User, fields); err != nil {
		return err
	}
	return u.Apply(fields)
}

// Apply assigns the present fields only. name and username both set the
// username; username is applied last.
func (u *User) Apply(fields Fields) error {
	values, err := fields.strings(FieldName, FieldUsername, FieldEmail, FieldPassword)
	if err != nil {
		return err
	}

	if v, ok := values[FieldName]; ok {
		u.Username = v
	}
	if v, ok := values[FieldUsername]; ok {
		u.Username = v
	}
	if v, ok := values[FieldEmail]; ok {
		u.Email = v
	}
	if v, ok := values[FieldPassword]; ok {
		u.Password = v
	}
	return nil
}
