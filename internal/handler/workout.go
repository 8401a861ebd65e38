package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/parth-samanta/LogMyFit/internal/ctxkeys"
	"github.com/parth-samanta/LogMyFit/internal/model"
	"github.com/parth-samanta/LogMyFit/internal/repository"
	"github.com/parth-samanta/LogMyFit/internal/validation"
)

type workoutLogRequest struct {
	Date        string      `json:"date"`
	WorkoutType *string     `json:"workout_type"`
	Exercise    *string     `json:"exercise"`
	Sets        OptionalInt `json:"sets"`
	Reps        OptionalInt `json:"reps"`
	Notes       *string     `json:"notes"`
}

type WorkoutLogHandler struct {
	logs repository.WorkoutLogRepository
}

func NewWorkoutLogHandler(logs repository.WorkoutLogRepository) *WorkoutLogHandler {
	return &WorkoutLogHandler{logs: logs}
}

func (h *WorkoutLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxkeys.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req workoutLogRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		if errors.Is(err, ErrNotANumber) {
			writeError(w, http.StatusBadRequest, "invalid sets or reps value")
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

	workoutLogID, err := h.logs.Add(userID, &model.WorkoutLogInput{
		Date:        date,
		WorkoutType: req.WorkoutType,
		Exercise:    req.Exercise,
		Sets:        req.Sets.Ptr(),
		Reps:        req.Reps.Ptr(),
		Notes:       req.Notes,
	})
	if err != nil {
		if validation.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to save workout log", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to save workout log")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "Workout log saved",
		"workoutLogId": workoutLogID,
		"date":         date,
	})
}

// List returns all workout entries newest date first, or one day's
// entries in insertion order when an explicit ?date= is given.
func (h *WorkoutLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxkeys.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var logs []*model.WorkoutLog
	var err error

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date != "" {
		err = validation.ValidateDate(date)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logs, err = h.logs.ListForDate(userID, date)
	} else {
		logs, err = h.logs.List(userID)
	}
	if err != nil {
		slog.Error("failed to fetch workout logs", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout logs")
		return
	}

	if logs == nil {
		logs = []*model.WorkoutLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

// Stats reports how many workouts the user has logged per workout type.
// Entries without a type are not counted.
func (h *WorkoutLogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxkeys.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	counts, err := h.logs.CountByType(userID)
	if err != nil {
		slog.Error("failed to fetch workout stats", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to fetch workout stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"counts": counts})
}
