package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/parth-samanta/LogMyFit/internal/model"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type UserRepository interface {
	Create(user *model.User) (int64, error)
	ByUsername(username string) (*model.User, error)
	IDByUsername(username string) (int64, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) (int64, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `INSERT INTO users (username, password_hash, email, created_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := r.db.Get(&id, query, user.Username, user.PasswordHash, user.Email, user.CreatedAt)
	if err != nil {
		// Check for unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}

	user.ID = id
	return id, nil
}

func (r *userRepository) ByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.Get(user, query, username)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) IDByUsername(username string) (int64, error) {
	var id int64
	query := `SELECT id FROM users WHERE username = $1`

	err := r.db.Get(&id, query, username)
	if err == sql.ErrNoRows {
		return 0, ErrUserNotFound
	}

	return id, err
}
