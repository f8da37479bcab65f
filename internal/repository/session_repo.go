package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tkexclusiv/catalog_api/internal/models"
)

// SessionRepository stores opaque customer session tokens.
type SessionRepository struct {
	db sqlx.ExtContext
}

func NewSessionRepository(db sqlx.ExtContext) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *models.Session) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO user_sessions (user_id, session_token, expires_at)
		VALUES (?, ?, ?)
	`), s.UserID, s.Token, s.ExpiresAt)
	return err
}

// Expire ends every session with the token. Unknown tokens are not an error.
func (r *SessionRepository) Expire(ctx context.Context, token string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE user_sessions SET expires_at = ? WHERE session_token = ?
	`), now, token)
	return err
}

// CountForUser returns how many sessions a user has, expired or not.
func (r *SessionRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, r.db, &n, r.db.Rebind(`SELECT COUNT(1) FROM user_sessions WHERE user_id = ?`), userID)
	return n, err
}
