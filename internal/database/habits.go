package database

import (
	"context"
	"errors"

	"dailies/internal/models"

	"github.com/jackc/pgx/v5"
)

func (q *Queries) GetHabit(ctx context.Context, id int64) (*models.Habit, error) {
	query := `SELECT id, name, user_id FROM habits WHERE id = $1`

	var habit models.Habit
	err := q.db.QueryRow(ctx, query, id).Scan(&habit.ID, &habit.Name, &habit.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &habit, nil
}

func (q *Queries) ListHabitsByUser(ctx context.Context, userID int64) ([]models.Habit, error) {
	query := `SELECT id, name, user_id FROM habits WHERE user_id = $1 ORDER BY id`

	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var habit models.Habit
		if err := rows.Scan(&habit.ID, &habit.Name, &habit.UserID); err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if habits == nil {
		return []models.Habit{}, nil
	}

	return habits, nil
}

// CreateHabit resolves the owner before validating fields, so an unknown
// user is reported even for an invalid payload.
func (q *Queries) CreateHabit(ctx context.Context, userID int64, fields models.Fields) (*models.Habit, error) {
	user, err := q.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	habit, err := models.NewHabit(fields, userID)
	if err != nil {
		return nil, err
	}

	if err := q.insertHabit(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// UpdateHabit applies the update contract to a habit owned by userID. A
// habit belonging to another user is reported as not found.
func (q *Queries) UpdateHabit(ctx context.Context, userID, habitID int64, fields models.Fields) (*models.Habit, error) {
	user, err := q.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	habit, err := q.GetHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil || habit.UserID != userID {
		return nil, ErrHabitNotFound
	}

	if err := habit.Update(fields); err != nil {
		return nil, err
	}

	if err := q.SaveHabit(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (q *Queries) SaveHabit(ctx context.Context, habit *models.Habit) error {
	query := `UPDATE habits SET name = $2 WHERE id = $1`

	res, err := q.db.Exec(ctx, query, habit.ID, habit.Name)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return ErrHabitNotFound
	}
	return nil
}

func (q *Queries) insertHabit(ctx context.Context, habit *models.Habit) error {
	query := `INSERT INTO habits (name, user_id) VALUES ($1, $2) RETURNING id`

	err := q.db.QueryRow(ctx, query, habit.Name, habit.UserID).Scan(&habit.ID)
	if err != nil {
		return classify(err)
	}
	return nil
}
