package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tkexclusiv/catalog_api/internal/models"
)

// UserRepository handles data access for customer accounts. It runs on
// either the pool or a transaction.
type UserRepository struct {
	db sqlx.ExtContext
}

func NewUserRepository(db sqlx.ExtContext) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, r.db, &user, r.db.Rebind(`
		SELECT id, email, password_hash, name, phone
		FROM users
		WHERE email = ?
	`), email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (email, password_hash, name, phone)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	return r.db.QueryRowxContext(ctx, query, user.Email, user.PasswordHash, user.Name, user.Phone).
		Scan(&user.ID)
}

// GetBySessionToken returns the owner of an unexpired session.
func (r *UserRepository) GetBySessionToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, r.db, &user, r.db.Rebind(`
		SELECT u.id, u.email, u.password_hash, u.name, u.phone
		FROM users u
		JOIN user_sessions s ON u.id = s.user_id
		WHERE s.session_token = ? AND s.expires_at > ?
	`), token, now)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
