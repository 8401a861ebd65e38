package model

// Goal is the per-user, per-date target row. All metric fields are
// nullable: an unset goal metric means "no target", not zero.
type Goal struct {
	ID       int64    `db:"id" json:"-"`
	UserID   int64    `db:"user_id" json:"-"`
	Date     string   `db:"date" json:"date"`
	Steps    *int64   `db:"steps_goal" json:"steps_goal"`
	Calories *int64   `db:"calories_goal" json:"calories_goal"`
	Protein  *float64 `db:"protein_goal" json:"protein_goal"`
	Carbs    *float64 `db:"carbs_goal" json:"carbs_goal"`
	Fats     *float64 `db:"fats_goal" json:"fats_goal"`
}

// GoalInput carries the five metric targets for an upsert. Every field is
// written on conflict, so omitted fields wipe previously stored values.
type GoalInput struct {
	Steps    *int64
	Calories *int64
	Protein  *float64
	Carbs    *float64
	Fats     *float64
}
