package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/parth-samanta/LogMyFit/internal/ctxkeys"
	"github.com/parth-samanta/LogMyFit/internal/model"
	"github.com/parth-samanta/LogMyFit/internal/repository"
)

type goalsRequest struct {
	Date         string        `json:"date"`
	StepsGoal    OptionalInt   `json:"steps_goal"`
	CaloriesGoal OptionalInt   `json:"calories_goal"`
	ProteinGoal  OptionalFloat `json:"protein_goal"`
	CarbsGoal    OptionalFloat `json:"carbs_goal"`
	FatsGoal     OptionalFloat `json:"fats_goal"`
}

type progressResponse struct {
	Date  string            `json:"date"`
	Sum   model.ActivitySum `json:"sum"`
	Goals *model.Goal       `json:"goals"`

	// Remaining-vs-goal fields are present only when a goal row exists.
	LeftSteps    *int64   `json:"leftSteps,omitempty"`
	LeftCalories *int64   `json:"leftCalories,omitempty"`
	LeftProtein  *float64 `json:"leftProtein,omitempty"`
	LeftCarbs    *float64 `json:"leftCarbs,omitempty"`
	LeftFats     *float64 `json:"leftFats,omitempty"`
}

type GoalHandler struct {
	goals repository.GoalRepository
	logs  repository.ActivityLogRepository
}

func NewGoalHandler(goals repository.GoalRepository, logs repository.ActivityLogRepository) *GoalHandler {
	return &GoalHandler{goals: goals, logs: logs}
}

func (h *GoalHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxkeys.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req goalsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		if errors.Is(err, ErrNotANumber) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := resolveDate(r, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.goals.Upsert(userID, date, &model.GoalInput{
		Steps:    req.StepsGoal.Ptr(),
		Calories: req.CaloriesGoal.Ptr(),
		Protein:  req.ProteinGoal.Ptr(),
		Carbs:    req.CarbsGoal.Ptr(),
		Fats:     req.FatsGoal.Ptr(),
	})
	if err != nil {
		slog.Error("failed to save goals", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to save goals")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "goals-saved",
		"date":    date,
	})
}

// Progress combines the day's activity sums with its goal row. Remaining
// amounts clamp at zero; with no goal row they are omitted entirely.
func (h *GoalHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxkeys.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	date, err := resolveDate(r, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sum, err := h.logs.SumForDate(userID, date)
	if err != nil {
		slog.Error("failed to fetch progress sums", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	goal, err := h.goals.ForDate(userID, date)
	if err != nil && !errors.Is(err, repository.ErrGoalNotFound) {
		slog.Error("failed to fetch goals", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	resp := progressResponse{
		Date:  date,
		Sum:   *sum,
		Goals: goal,
	}

	if goal != nil {
		resp.LeftSteps = leftInt(goal.Steps, sum.Steps)
		resp.LeftCalories = leftInt(goal.Calories, sum.Calories)
		resp.LeftProtein = leftFloat(goal.Protein, sum.Protein)
		resp.LeftCarbs = leftFloat(goal.Carbs, sum.Carbohydrates)
		resp.LeftFats = leftFloat(goal.Fats, sum.Fats)
	}

	writeJSON(w, http.StatusOK, resp)
}

// leftInt computes max(0, goal - done), treating an unset goal field as
// zero. Overshooting a goal never reports a negative remainder.
func leftInt(goal *int64, done int64) *int64 {
	var g int64
	if goal != nil {
		g = *goal
	}
	left := max(0, g-done)
	return &left
}

func leftFloat(goal *float64, done float64) *float64 {
	var g float64
	if goal != nil {
		g = *goal
	}
	left := max(0, g-done)
	return &left
}
