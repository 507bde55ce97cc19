package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name          string
		err           error
		wantIntegrity bool
	}{
		{"nil", nil, false},
		{"plain error", plain, false},
		{"not null violation", &pgconn.PgError{Code: "23502"}, true},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, true},
		{"string too long", &pgconn.PgError{Code: "22001"}, true},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)

			var iErr *IntegrityError
			require.Equal(t, tc.wantIntegrity, errors.As(got, &iErr))
			if !tc.wantIntegrity {
				require.Equal(t, tc.err, got)
			}
		})
	}
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	sentinel := errors.New("boom")
	email := "rollback@example.com"

	err := testStore.ExecTx(context.Background(), func(q *Queries) error {
		_, err := q.db.Exec(context.Background(), `INSERT INTO users (username, email, password) VALUES ('r', $1, 'p')`, email)
		require.NoError(t, err)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 0, countRows(t, `SELECT count(*) FROM users WHERE email = $1`, email))
}
