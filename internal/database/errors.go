package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrUserNotFound = errors.New("user not found")
var ErrHabitNotFound = errors.New("habit not found")

// IntegrityError wraps a write rejected by the database: a constraint
// violation (SQLSTATE class 23) or a data exception such as an over-long
// value (class 22).
type IntegrityError struct {
	Err *pgconn.PgError
}

func (e *IntegrityError) Error() string {
	return e.Err.Error()
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23") {
			return &IntegrityError{Err: pgErr}
		}
	}
	return err
}
