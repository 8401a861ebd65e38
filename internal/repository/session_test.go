package repository

import (
	"testing"
	"time"

	"github.com/parth-samanta/LogMyFit/internal/model"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateAndLookup(t *testing.T) {
	conn := newTestDB(t)
	userID := createTestUser(t, conn, "alice")
	repo := NewSessionRepository(conn)

	session := &model.Session{
		Token:     "tok-1",
		UserID:    userID,
		Username:  "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(session))
	require.NotEmpty(t, session.ID)

	got, err := repo.ByToken("tok-1")
	require.NoError(t, err)
	require.Equal(t, userID, got.UserID)
	require.Equal(t, "alice", got.Username)
	require.False(t, got.IsExpired())
}

func TestSessionExpiredBehavesAsMissing(t *testing.T) {
	conn := newTestDB(t)
	userID := createTestUser(t, conn, "alice")
	repo := NewSessionRepository(conn)

	require.NoError(t, repo.Create(&model.Session{
		Token:     "tok-old",
		UserID:    userID,
		Username:  "alice",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := repo.ByToken("tok-old")
	require.ErrorIs(t, err, ErrSessionNotFound)

	removed, err := repo.DeleteExpired()
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
}

func TestSessionDeleteByToken(t *testing.T) {
	conn := newTestDB(t)
	userID := createTestUser(t, conn, "alice")
	repo := NewSessionRepository(conn)

	require.NoError(t, repo.Create(&model.Session{
		Token:     "tok-2",
		UserID:    userID,
		Username:  "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.DeleteByToken("tok-2"))

	_, err := repo.ByToken("tok-2")
	require.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting an unknown token is not an error.
	require.NoError(t, repo.DeleteByToken("tok-2"))
}
