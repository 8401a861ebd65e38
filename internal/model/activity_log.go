package model

// ActivityLog is one stored daily-log row. Numeric columns are read with
// COALESCE so absent values always surface as zero, never null.
type ActivityLog struct {
	ID            int64   `db:"id" json:"id"`
	UserID        int64   `db:"user_id" json:"-"`
	Date          string  `db:"date" json:"date"`
	Steps         int64   `db:"steps" json:"steps"`
	Calories      int64   `db:"calories" json:"calories"`
	Protein       float64 `db:"protein" json:"protein"`
	Carbohydrates float64 `db:"carbohydrates" json:"carbohydrates"`
	Fats          float64 `db:"fats" json:"fats"`
	WorkoutType   *string `db:"workout_type" json:"workout_type"`
	Notes         *string `db:"notes" json:"notes"`
}

// ActivityLogInput is the insert shape. Nil numeric fields are bound as
// NULL; the write path never fabricates zeros the caller didn't send.
type ActivityLogInput struct {
	Date          string
	Steps         *int64
	Calories      *int64
	Protein       *float64
	Carbohydrates *float64
	Fats          *float64
	WorkoutType   *string
	Notes         *string
}

// ActivitySum is the per-date aggregate across all daily logs.
type ActivitySum struct {
	Steps         int64   `db:"steps" json:"steps"`
	Calories      int64   `db:"calories" json:"calories"`
	Protein       float64 `db:"protein" json:"protein"`
	Carbohydrates float64 `db:"carbohydrates" json:"carbohydrates"`
	Fats          float64 `db:"fats" json:"fats"`
}
