package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a single-use token emailed on forgot-password.
type PasswordReset struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Email     string    `db:"email"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
}
