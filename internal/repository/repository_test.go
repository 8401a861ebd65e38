package repository

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/parth-samanta/LogMyFit/internal/db"
	"github.com/parth-samanta/LogMyFit/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory
	// database.
	conn.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func createTestUser(t *testing.T, conn *sqlx.DB, username string) int64 {
	t.Helper()

	id, err := NewUserRepository(conn).Create(&model.User{
		Username:     username,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return id
}

func int64Ptr(v int64) *int64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}
