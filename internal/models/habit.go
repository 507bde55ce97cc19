package models

import "dailies/internal/validation"

type Habit struct {
	ID     int64   `json:"id" db:"id"`
	Name   *string `json:"name" db:"name"`
	UserID int64   `json:"user_id" db:"user_id"`
}

// NewHabit builds an unsaved habit bound to userID. A zero userID leaves
// the habit unattached until its owner is inserted.
func NewHabit(fields Fields, userID int64) (*Habit, error) {
	if err := validation.Validate(validation.Habit, fields); err != nil {
		return nil, err
	}

	habit := &Habit{UserID: userID}
	if err := habit.Apply(fields); err != nil {
		return nil, err
	}
	return habit, nil
}

func (h *Habit) Update(fields Fields) error {
	if err := validation.Validate(validation.Habit, fields); err != nil {
		return err
	}
	return h.Apply(fields)
}

// Apply assigns the name if present. id and user_id never change after
// creation.
func (h *Habit) Apply(fields Fields) error {
	values, err := fields.strings(FieldName)
	if err != nil {
		return err
	}

	if v, ok := values[FieldName]; ok {
		h.Name = v
	}
	return nil
}
