package model

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Email        *string   `db:"email"`
	CreatedAt    time.Time `db:"created_at"`
}
