package database

import (
	"context"
	"errors"

	"dailies/internal/models"

	"github.com/jackc/pgx/v5"
)

// GetUser returns the user with its habits, or nil if no such user exists.
func (q *Queries) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, email, password FROM users WHERE id = $1`

	var user models.User
	err := q.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	user.Habits, err = q.ListHabitsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser validates fields, then inserts the user followed by its
// inline habits. Run it inside ExecTx so a failed habit insert leaves no
// user behind.
func (q *Queries) CreateUser(ctx context.Context, fields models.Fields) (*models.User, error) {
	user, err := models.NewUser(fields)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err = q.db.QueryRow(ctx, query, user.Username, user.Email, user.Password).Scan(&user.ID)
	if err != nil {
		return nil, classify(err)
	}

	for i := range user.Habits {
		user.Habits[i].UserID = user.ID
		if err := q.insertHabit(ctx, &user.Habits[i]); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// UpdateUser loads the user, applies the update contract and writes it back.
func (q *Queries) UpdateUser(ctx context.Context, id int64, fields models.Fields) (*models.User, error) {
	user, err := q.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := user.Update(fields); err != nil {
		return nil, err
	}

	if err := q.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (q *Queries) SaveUser(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET username = $2, email = $3, password = $4 WHERE id = $1`

	res, err := q.db.Exec(ctx, query, user.ID, user.Username, user.Email, user.Password)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
