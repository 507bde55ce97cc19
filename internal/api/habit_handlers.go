package api

import (
	"net/http"

	"dailies/internal/database"
	"dailies/internal/models"
)

// @Summary      Create a habit
// @Tags         habits
// @Accept       json
// @Produce      json
// @Param        userId  path      int  true  "Owning user ID"
// @Success      201     {object}  models.Habit
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse "User not found"
// @Failure      500     {object}  ErrorResponse
// @Router       /user/{userId}/habit [post]
func (s *Server) CreateHabitHandler(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.readFields(w, r, "No data provided for creating habit")
	if !ok {
		return
	}

	userID, ok := urlID(r, "userId")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	var habit *models.Habit
	err := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		habit, err = q.CreateHabit(r.Context(), userID, fields)
		return err
	})
	if err != nil {
		s.handleError(w, r, "create_habit", err)
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}

// @Summary      Update a habit
// @Description  Renames a habit. The owning user cannot be changed.
// @Tags         habits
// @Accept       json
// @Produce      json
// @Param        userId   path      int  true  "Owning user ID"
// @Param        habitId  path      int  true  "Habit ID"
// @Success      201      {object}  models.Habit
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse "User or habit not found"
// @Failure      500      {object}  ErrorResponse
// @Router       /user/{userId}/habit/{habitId} [put]
func (s *Server) UpdateHabitHandler(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.readFields(w, r, "No data provided")
	if !ok {
		return
	}

	userID, ok := urlID(r, "userId")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	habitID, ok := urlID(r, "habitId")
	if !ok {
		writeError(w, http.StatusNotFound, "Habit not found")
		return
	}

	var habit *models.Habit
	err := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		habit, err = q.UpdateHabit(r.Context(), userID, habitID, fields)
		return err
	})
	if err != nil {
		s.handleError(w, r, "update_habit", err)
		return
	}

	writeJSON(w, http.StatusCreated, habit)
}
