package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/parth-samanta/LogMyFit/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type SessionRepository interface {
	Create(session *model.Session) error
	ByToken(token string) (*model.Session, error)
	DeleteByToken(token string) error
	DeleteExpired() (int64, error)
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO sessions (id, token, user_id, username, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query,
		session.ID,
		session.Token,
		session.UserID,
		session.Username,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

// ByToken returns the session for a cookie token, treating expired rows
// the same as missing ones.
func (r *sessionRepository) ByToken(token string) (*model.Session, error) {
	var s model.Session
	query := `SELECT * FROM sessions WHERE token = $1 AND expires_at > $2`

	err := r.db.Get(&s, query, token, time.Now())
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *sessionRepository) DeleteByToken(token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	_, err := r.db.Exec(query, token)
	return err
}

// DeleteExpired removes sessions past their expiry. Optional maintenance
// operation; nothing depends on expired rows being cleaned up since
// ByToken already filters them out.
func (r *sessionRepository) DeleteExpired() (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`
	result, err := r.db.Exec(query, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
