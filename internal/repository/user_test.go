package repository

import (
	"testing"

	"github.com/parth-samanta/LogMyFit/internal/model"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLookup(t *testing.T) {
	conn := newTestDB(t)
	repo := NewUserRepository(conn)

	id, err := repo.Create(&model.User{
		Username:     "alice",
		PasswordHash: "hash",
		Email:        strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	user, err := repo.ByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, id, user.ID)
	require.Equal(t, "hash", user.PasswordHash)
	require.NotNil(t, user.Email)
	require.Equal(t, "alice@example.com", *user.Email)
	require.False(t, user.CreatedAt.IsZero())

	gotID, err := repo.IDByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, id, gotID)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	conn := newTestDB(t)
	repo := NewUserRepository(conn)

	_, err := repo.Create(&model.User{Username: "bob", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(&model.User{Username: "bob", PasswordHash: "h2"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserNotFound(t *testing.T) {
	conn := newTestDB(t)
	repo := NewUserRepository(conn)

	_, err := repo.ByUsername("ghost")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.IDByUsername("ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}
