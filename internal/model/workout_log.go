package model

// WorkoutLog is one stored workout entry (exercise/sets/reps).
type WorkoutLog struct {
	ID          int64   `db:"id" json:"id"`
	UserID      int64   `db:"user_id" json:"-"`
	Date        string  `db:"date" json:"date"`
	WorkoutType *string `db:"workout_type" json:"workout_type"`
	Exercise    *string `db:"exercise" json:"exercise"`
	Sets        int64   `db:"sets" json:"sets"`
	Reps        int64   `db:"reps" json:"reps"`
	Notes       *string `db:"notes" json:"notes"`
}

// WorkoutLogInput is the insert shape. Sets and reps stay pointers so the
// store can tell "missing" apart from zero before rejecting either.
type WorkoutLogInput struct {
	Date        string
	WorkoutType *string
	Exercise    *string
	Sets        *int64
	Reps        *int64
	Notes       *string
}
