package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"dailies/internal/database"
	"dailies/internal/models"
	"dailies/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var errNoData = errors.New("no data provided")

type ErrorResponse struct {
	Error string `json:"error" example:"User not found"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeFields reads the body as a JSON object. An absent body, null and
// {} all yield errNoData.
func decodeFields(w http.ResponseWriter, r *http.Request) (models.Fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var fields models.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoData
		}
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	return fields, nil
}

// readFields writes the 400 response itself and reports whether the
// handler should continue.
func (s *Server) readFields(w http.ResponseWriter, r *http.Request, noDataMessage string) (models.Fields, bool) {
	fields, err := decodeFields(w, r)
	if err != nil {
		if errors.Is(err, errNoData) {
			writeError(w, http.StatusBadRequest, noDataMessage)
		} else {
			writeError(w, http.StatusBadRequest, "Invalid request body")
		}
		return nil, false
	}
	return fields, true
}

func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// handleError translates entity and store errors into responses. It is the
// only place where they are mapped to status codes.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	var validationErr *validation.Error
	var integrityErr *database.IntegrityError

	switch {
	case errors.As(err, &validationErr):
		s.metrics.errorCount.WithLabelValues(handler, "validation").Inc()
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, database.ErrUserNotFound):
		s.metrics.errorCount.WithLabelValues(handler, "not_found").Inc()
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, database.ErrHabitNotFound):
		s.metrics.errorCount.WithLabelValues(handler, "not_found").Inc()
		writeError(w, http.StatusNotFound, "Habit not found")
	case errors.As(err, &integrityErr):
		s.metrics.errorCount.WithLabelValues(handler, "integrity").Inc()
		s.logger.Warn("integrity_error",
			zap.String("handler", handler),
			zap.String("sqlstate", integrityErr.Err.Code),
			zap.String("request_id", GetRequestID(r.Context())),
		)
		writeError(w, http.StatusBadRequest, "Data integrity error: "+integrityErr.Error())
	default:
		s.metrics.errorCount.WithLabelValues(handler, "internal").Inc()
		s.logger.Error("request_failed",
			zap.String("handler", handler),
			zap.Error(err),
			zap.String("request_id", GetRequestID(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
