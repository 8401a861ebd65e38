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

type logRequest struct {
	Date          string        `json:"date"`
	Steps         OptionalInt   `json:"steps"`
	Calories      OptionalInt   `json:"calories"`
	Protein       OptionalFloat `json:"protein"`
	Carbohydrates OptionalFloat `json:"carbohydrates"`
	Fats          OptionalFloat `json:"fats"`
	WorkoutType   *string       `json:"workout_type"`
	Notes         *string       `json:"notes"`
}

type ActivityLogHandler struct {
	logs repository.ActivityLogRepository
}

func NewActivityLogHandler(logs repository.ActivityLogRepository) *ActivityLogHandler {
	return &ActivityLogHandler{logs: logs}
}

func (h *ActivityLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxkeys.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req logRequest
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

	logID, err := h.logs.Add(userID, &model.ActivityLogInput{
		Date:          date,
		Steps:         req.Steps.Ptr(),
		Calories:      req.Calories.Ptr(),
		Protein:       req.Protein.Ptr(),
		Carbohydrates: req.Carbohydrates.Ptr(),
		Fats:          req.Fats.Ptr(),
		WorkoutType:   req.WorkoutType,
		Notes:         req.Notes,
	})
	if err != nil {
		slog.Error("failed to save log", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to save log")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "log-saved",
		"logId":   logID,
		"date":    date,
	})
}

// List returns all entries newest date first, or one day's entries in
// insertion order when an explicit ?date= is given.
func (h *ActivityLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxkeys.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var logs []*model.ActivityLog
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
		slog.Error("failed to fetch logs", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}

	if logs == nil {
		logs = []*model.ActivityLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}
