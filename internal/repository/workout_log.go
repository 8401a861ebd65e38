package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/parth-samanta/LogMyFit/internal/model"
	"github.com/parth-samanta/LogMyFit/internal/validation"
)

const workoutLogColumns = `
	id, user_id, date, workout_type, exercise,
	COALESCE(sets, 0) AS sets,
	COALESCE(reps, 0) AS reps,
	notes
`

type WorkoutLogRepository interface {
	Add(userID int64, input *model.WorkoutLogInput) (int64, error)
	List(userID int64) ([]*model.WorkoutLog, error)
	ListForDate(userID int64, date string) ([]*model.WorkoutLog, error)
	CountByType(userID int64) (map[string]int64, error)
}

type workoutLogRepository struct {
	db *sqlx.DB
}

func NewWorkoutLogRepository(db *sqlx.DB) WorkoutLogRepository {
	return &workoutLogRepository{db: db}
}

// Add validates sets/reps before touching the database: both must be
// present and positive or the entry is rejected and nothing is persisted.
func (r *workoutLogRepository) Add(userID int64, input *model.WorkoutLogInput) (int64, error) {
	err := validation.ValidateSetsReps(input.Sets, input.Reps)
	if err != nil {
		return 0, err
	}

	query := `INSERT INTO workout_logs (user_id, date, workout_type, exercise, sets, reps, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id int64
	err = r.db.Get(&id, query,
		userID,
		input.Date,
		input.WorkoutType,
		input.Exercise,
		input.Sets,
		input.Reps,
		input.Notes,
	)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// List returns all workout entries for a user, newest date first.
func (r *workoutLogRepository) List(userID int64) ([]*model.WorkoutLog, error) {
	var logs []*model.WorkoutLog
	query := `SELECT ` + workoutLogColumns + ` FROM workout_logs WHERE user_id = $1 ORDER BY date DESC`

	err := r.db.Select(&logs, query, userID)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// ListForDate returns one day's entries in insertion order (ascending id),
// same contract as daily logs.
func (r *workoutLogRepository) ListForDate(userID int64, date string) ([]*model.WorkoutLog, error) {
	var logs []*model.WorkoutLog
	query := `SELECT ` + workoutLogColumns + ` FROM workout_logs WHERE user_id = $1 AND date = $2 ORDER BY id ASC`

	err := r.db.Select(&logs, query, userID, date)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// CountByType counts workouts per workout_type, skipping rows that have
// no type set.
func (r *workoutLogRepository) CountByType(userID int64) (map[string]int64, error) {
	rows, err := r.db.Queryx(
		`SELECT workout_type, COUNT(*) AS count
		 FROM workout_logs
		 WHERE user_id = $1 AND workout_type IS NOT NULL
		 GROUP BY workout_type`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var workoutType string
		var count int64
		err = rows.Scan(&workoutType, &count)
		if err != nil {
			return nil, err
		}
		counts[workoutType] = count
	}

	return counts, rows.Err()
}
