package model

import (
	"time"
)

// Session is a server-side login session. The opaque token is the only
// thing the client holds (in a cookie); everything else stays in the
// database so deleted users cannot outlive their sessions.
type Session struct {
	ID        string    `db:"id"`
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
