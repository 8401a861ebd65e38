package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/parth-samanta/LogMyFit/internal/model"
	"github.com/parth-samanta/LogMyFit/internal/repository"
	"github.com/parth-samanta/LogMyFit/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const sessionCookieName = "session_token"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService owns password hashing and the server-side session
// lifecycle. Sessions are database rows referenced by an opaque cookie
// token; the client never holds identity claims directly.
type AuthService struct {
	userRepository    repository.UserRepository
	sessionRepository repository.SessionRepository
	sessionExpiry     time.Duration
	isProduction      bool
}

func NewAuthService(
	userRepository repository.UserRepository,
	sessionRepository repository.SessionRepository,
	sessionExpiry time.Duration,
	isProduction bool,
) *AuthService {
	return &AuthService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		sessionExpiry:     sessionExpiry,
		isProduction:      isProduction,
	}
}

// Signup creates a user. Username uniqueness is enforced by the store's
// unique constraint, not a pre-check, so concurrent signups with the same
// name cannot race past each other; the loser gets ErrUsernameTaken.
func (s *AuthService) Signup(username, password string, email *string) (int64, error) {
	username = strings.TrimSpace(username)

	err := validation.ValidateCredentials(username, password)
	if err != nil {
		return 0, err
	}

	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else {
			email = &trimmed
		}
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.userRepository.Create(&model.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return 0, repository.ErrUsernameTaken
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

// Authenticate reports whether the credentials match a stored user.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller; bcrypt's comparison keeps the check timing-safe.
func (s *AuthService) Authenticate(username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}

	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil, nil
}

// Login authenticates and opens a session.
func (s *AuthService) Login(username, password string) (*model.Session, error) {
	username = strings.TrimSpace(username)

	ok, err := s.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	userID, err := s.userRepository.IDByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &model.Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(s.sessionExpiry),
	}
	err = s.sessionRepository.Create(session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Logout invalidates the session row. Best effort: callers report success
// to the client regardless.
func (s *AuthService) Logout(token string) error {
	return s.sessionRepository.DeleteByToken(token)
}

// ResolveSession maps a cookie token to a live (userID, username) pair.
// The stored username is re-checked against the users table on every call
// so sessions of deleted users stop working immediately.
func (s *AuthService) ResolveSession(token string) (int64, string, error) {
	session, err := s.sessionRepository.ByToken(token)
	if err != nil {
		return 0, "", err
	}

	userID, err := s.userRepository.IDByUsername(session.Username)
	if err != nil {
		return 0, "", err
	}

	return userID, session.Username, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) SetSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionToken extracts the session cookie value from a request.
func SessionToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
