package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHabit(t *testing.T) {
	habit, err := NewHabit(Fields{"name": "meditate"}, 5)
	require.NoError(t, err)
	require.Equal(t, "meditate", *habit.Name)
	require.Equal(t, int64(5), habit.UserID)
}

func TestNewHabit_MissingName(t *testing.T) {
	habit, err := NewHabit(Fields{}, 5)
	require.Nil(t, habit)
	require.EqualError(t, err, "Missing mandatory fields: name")
}

func TestNewHabit_IgnoresUserIDInPayload(t *testing.T) {
	habit, err := NewHabit(Fields{"name": "meditate", "user_id": 99.0}, 5)
	require.NoError(t, err)
	require.Equal(t, int64(5), habit.UserID)
}

func TestHabit_Update(t *testing.T) {
	habit := &Habit{ID: 2, Name: strPtr("run"), UserID: 5}

	err := habit.Update(Fields{"id": 10.0, "user_id": 11.0, "name": "walk"})
	require.NoError(t, err)
	require.Equal(t, int64(2), habit.ID)
	require.Equal(t, int64(5), habit.UserID)
	require.Equal(t, "walk", *habit.Name)
}

func TestHabit_Update_MissingName(t *testing.T) {
	habit := &Habit{ID: 2, Name: strPtr("run"), UserID: 5}

	err := habit.Update(Fields{"user_id": 11.0})
	require.EqualError(t, err, "Missing mandatory fields: name")
	require.Equal(t, "run", *habit.Name)
}

func TestHabit_Update_NullName(t *testing.T) {
	habit := &Habit{ID: 2, Name: strPtr("run"), UserID: 5}

	require.NoError(t, habit.Update(Fields{"name": nil}))
	require.Nil(t, habit.Name)
}

func TestHabit_JSON(t *testing.T) {
	data, err := json.Marshal(&Habit{ID: 2, Name: strPtr("run"), UserID: 5})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":2,"name":"run","user_id":5}`, string(data))
}

func TestFields_Without(t *testing.T) {
	fields := Fields{"a": 1, "b": 2}

	out := fields.Without("a")
	require.Equal(t, Fields{"b": 2}, out)
	require.Equal(t, Fields{"a": 1, "b": 2}, fields)
}
