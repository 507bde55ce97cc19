package api

import (
	"net/http"

	"dailies/internal/database"
	"dailies/internal/models"
)

// @Summary      Get a user
// @Description  Retrieves a user together with their habits.
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  models.User
// @Failure      404     {object}  ErrorResponse "User not found"
// @Failure      500     {object}  ErrorResponse
// @Router       /user/{userId} [get]
func (s *Server) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := urlID(r, "userId")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		s.handleError(w, r, "get_user", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// @Summary      Create a user
// @Description  Creates a user from name, email and password. Habits may be supplied inline; the user and all habits are written in one transaction.
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.User
// @Failure      400  {object}  ErrorResponse "No data, missing fields or data integrity error"
// @Failure      500  {object}  ErrorResponse
// @Router       /user [post]
func (s *Server) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.readFields(w, r, "No data provided for creating user")
	if !ok {
		return
	}

	var user *models.User
	err := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		user, err = q.CreateUser(r.Context(), fields)
		return err
	})
	if err != nil {
		s.handleError(w, r, "create_user", err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// @Summary      Update a user
// @Description  Updates a user. name, email and password must all be present in the payload, even when unchanged.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      201     {object}  models.User
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse "User not found"
// @Failure      500     {object}  ErrorResponse
// @Router       /user/{userId} [put]
func (s *Server) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.readFields(w, r, "No data provided")
	if !ok {
		return
	}

	userID, ok := urlID(r, "userId")
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	var user *models.User
	err := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		user, err = q.UpdateUser(r.Context(), userID, fields)
		return err
	})
	if err != nil {
		s.handleError(w, r, "update_user", err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
