package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/parth-samanta/LogMyFit/internal/repository"
	"github.com/parth-samanta/LogMyFit/internal/service"
	"github.com/parth-samanta/LogMyFit/internal/validation"
)

type signupRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := h.authService.Signup(req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrCredentialsRequired):
			writeError(w, http.StatusBadRequest, "username and password required")
		case errors.Is(err, repository.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "Username already taken")
		default:
			slog.Error("signup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	slog.Info("user created", "username", strings.TrimSpace(req.Username), "user_id", userID)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User created",
		"userId":  userID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	username := strings.TrimSpace(req.Username)
	err = validation.ValidateCredentials(username, req.Password)
	if err != nil {
		writeError(w, http.StatusBadRequest, "username and password required")
		return
	}

	session, err := h.authService.Login(username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			slog.Warn("failed login attempt", "username", username)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.authService.SetSessionCookie(w, session)
	slog.Info("user logged in", "username", username)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    username,
	})
}

// Logout always reports success. Session invalidation is best effort; a
// failed delete leaves an unexpired row behind but the client's cookie is
// cleared regardless.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := service.SessionToken(r)
	if ok {
		err := h.authService.Logout(token)
		if err != nil {
			slog.Warn("session invalidation failed", "error", err)
		}
	}

	h.authService.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"message": "Logged out"})
}
