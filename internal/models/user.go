package models

import "time"

// User is a registered storefront customer.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Name         string `db:"name" json:"name"`
	Phone        string `db:"phone" json:"phone"`
}

// Session binds an opaque token to a user until ExpiresAt.
type Session struct {
	UserID    int64     `db:"user_id"`
	Token     string    `db:"session_token"`
	ExpiresAt time.Time `db:"expires_at"`
}
