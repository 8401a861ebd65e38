package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/parth-samanta/LogMyFit/internal/db"
	"github.com/parth-samanta/LogMyFit/internal/repository"
	"github.com/parth-samanta/LogMyFit/internal/validation"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	t.Cleanup(func() { _ = conn.Close() })

	users := repository.NewUserRepository(conn)
	sessions := repository.NewSessionRepository(conn)
	return NewAuthService(users, sessions, time.Hour, false), users
}

func TestSignupHashesPassword(t *testing.T) {
	svc, users := newTestAuthService(t)

	id, err := svc.Signup("  alice  ", "secret123", nil)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	user, err := users.ByUsername("alice")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", user.PasswordHash)
	require.Nil(t, user.Email)
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Signup("", "secret123", nil)
	require.ErrorIs(t, err, validation.ErrCredentialsRequired)

	_, err = svc.Signup("alice", "   ", nil)
	require.ErrorIs(t, err, validation.ErrCredentialsRequired)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Signup("alice", "secret123", nil)
	require.NoError(t, err)

	_, err = svc.Signup("alice", "other456", nil)
	require.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Signup("alice", "secret123", nil)
	require.NoError(t, err)

	ok, err := svc.Authenticate("alice", "secret123")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Authenticate("alice", "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	// Unknown user is a plain false, not an error.
	ok, err = svc.Authenticate("ghost", "secret123")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoginAndResolveSession(t *testing.T) {
	svc, _ := newTestAuthService(t)

	userID, err := svc.Signup("alice", "secret123", nil)
	require.NoError(t, err)

	session, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, userID, session.UserID)

	resolvedID, username, err := svc.ResolveSession(session.Token)
	require.NoError(t, err)
	require.Equal(t, userID, resolvedID)
	require.Equal(t, "alice", username)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Signup("alice", "secret123", nil)
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Signup("alice", "secret123", nil)
	require.NoError(t, err)

	session, err := svc.Login("alice", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(session.Token))

	_, _, err = svc.ResolveSession(session.Token)
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}
