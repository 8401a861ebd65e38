package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/parth-samanta/LogMyFit/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Upsert(userID int64, date string, input *model.GoalInput) error
	ForDate(userID int64, date string) (*model.Goal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Upsert inserts or fully replaces the goal row for (user, date). Every
// metric column is overwritten on conflict, so a submission that omits a
// field clears any previously stored value for it. This is a full
// replace, never a merge.
func (r *goalRepository) Upsert(userID int64, date string, input *model.GoalInput) error {
	query := `
		INSERT INTO daily_goals (user_id, date, steps_goal, calories_goal, protein_goal, carbs_goal, fats_goal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, date) DO UPDATE SET
		  steps_goal = excluded.steps_goal,
		  calories_goal = excluded.calories_goal,
		  protein_goal = excluded.protein_goal,
		  carbs_goal = excluded.carbs_goal,
		  fats_goal = excluded.fats_goal
	`
	_, err := r.db.Exec(query,
		userID,
		date,
		input.Steps,
		input.Calories,
		input.Protein,
		input.Carbs,
		input.Fats,
	)
	return err
}

// ForDate returns ErrGoalNotFound when no goal row exists. Callers treat
// absence as "no goal set", never as an all-zero goal.
func (r *goalRepository) ForDate(userID int64, date string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM daily_goals WHERE user_id = $1 AND date = $2`

	err := r.db.Get(goal, query, userID, date)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}
