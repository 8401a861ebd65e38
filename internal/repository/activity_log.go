package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/parth-samanta/LogMyFit/internal/model"
)

// activityLogColumns coalesces nullable numeric columns to zero so every
// returned row carries concrete numbers.
const activityLogColumns = `
	id, user_id, date,
	COALESCE(steps, 0) AS steps,
	COALESCE(calories, 0) AS calories,
	COALESCE(protein, 0) AS protein,
	COALESCE(carbohydrates, 0) AS carbohydrates,
	COALESCE(fats, 0) AS fats,
	workout_type, notes
`

type ActivityLogRepository interface {
	Add(userID int64, input *model.ActivityLogInput) (int64, error)
	List(userID int64) ([]*model.ActivityLog, error)
	ListForDate(userID int64, date string) ([]*model.ActivityLog, error)
	SumForDate(userID int64, date string) (*model.ActivitySum, error)
}

type activityLogRepository struct {
	db *sqlx.DB
}

func NewActivityLogRepository(db *sqlx.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Add(userID int64, input *model.ActivityLogInput) (int64, error) {
	query := `INSERT INTO daily_logs (user_id, date, steps, calories, protein, carbohydrates, fats, workout_type, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	var id int64
	err := r.db.Get(&id, query,
		userID,
		input.Date,
		input.Steps,
		input.Calories,
		input.Protein,
		input.Carbohydrates,
		input.Fats,
		input.WorkoutType,
		input.Notes,
	)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// List returns all entries for a user, newest date first.
func (r *activityLogRepository) List(userID int64) ([]*model.ActivityLog, error) {
	var logs []*model.ActivityLog
	query := `SELECT ` + activityLogColumns + ` FROM daily_logs WHERE user_id = $1 ORDER BY date DESC`

	err := r.db.Select(&logs, query, userID)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// ListForDate returns one day's entries in insertion order. The ascending
// id ordering is contractual: clients replay a day's entries in the order
// they were recorded.
func (r *activityLogRepository) ListForDate(userID int64, date string) ([]*model.ActivityLog, error) {
	var logs []*model.ActivityLog
	query := `SELECT ` + activityLogColumns + ` FROM daily_logs WHERE user_id = $1 AND date = $2 ORDER BY id ASC`

	err := r.db.Select(&logs, query, userID, date)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// SumForDate aggregates all entries for one date. A date with no entries
// yields an all-zero sum, never an absent one.
func (r *activityLogRepository) SumForDate(userID int64, date string) (*model.ActivitySum, error) {
	sum := &model.ActivitySum{}
	query := `
		SELECT
		  COALESCE(SUM(steps), 0) AS steps,
		  COALESCE(SUM(calories), 0) AS calories,
		  COALESCE(SUM(protein), 0) AS protein,
		  COALESCE(SUM(carbohydrates), 0) AS carbohydrates,
		  COALESCE(SUM(fats), 0) AS fats
		FROM daily_logs
		WHERE user_id = $1 AND date = $2
	`

	err := r.db.Get(sum, query, userID, date)
	if err != nil {
		return nil, err
	}

	return sum, nil
}
