package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/tkexclusiv/catalog_api/internal/config"
	"github.com/tkexclusiv/catalog_api/internal/database"
	"github.com/tkexclusiv/catalog_api/internal/models"
	"github.com/tkexclusiv/catalog_api/internal/repository"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

const minPasswordLength = 6

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	SessionToken string       `json:"sessionToken"`
	User         *models.User `json:"user"`
}

// AuthService manages customer accounts and opaque session tokens.
type AuthService struct {
	db       *sqlx.DB
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	hasher   *PasswordHasher
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(db *sqlx.DB, cfg *config.AuthConfig) *AuthService {
	return &AuthService{
		db:       db,
		users:    repository.NewUserRepository(db),
		sessions: repository.NewSessionRepository(db),
		hasher:   NewPasswordHasher(cfg.PasswordHash),
		ttl:      cfg.SessionTTL,
		now:      time.Now,
	}
}

// Register creates the account and its first session atomically.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	user := &models.User{
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
	}
	if user.Email == "" || in.Password == "" || user.Name == "" {
		return nil, utils.NewValidationError("Email, password and name are required")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return nil, utils.NewValidationError("Password must be at least %d characters", minPasswordLength)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	var token string
	err = database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		users := repository.NewUserRepository(tx)

		_, err := users.GetByEmail(ctx, user.Email)
		switch {
		case err == nil:
			return utils.NewConflictError("Email already registered")
		case !errors.Is(err, sql.ErrNoRows):
			return err
		}

		if err := users.Create(ctx, user); err != nil {
			if repository.IsUniqueViolation(err) {
				return utils.NewConflictError("Email already registered")
			}
			return err
		}

		token, err = s.createSession(ctx, repository.NewSessionRepository(tx), user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Msg("User registered")
	return &AuthResult{SessionToken: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, utils.NewValidationError("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("email", email).Msg("Login for unknown email")
			return nil, utils.NewAuthError("Invalid email or password")
		}
		return nil, err
	}
	if !s.hasher.Verify(user.PasswordHash, in.Password) {
		log.Warn().Int64("user_id", user.ID).Msg("Password verification failed")
		return nil, utils.NewAuthError("Invalid email or password")
	}

	token, err := s.createSession(ctx, s.sessions, user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{SessionToken: token, User: user}, nil
}

// Logout expires the session. Unknown tokens succeed silently.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return utils.NewValidationError("Session token required")
	}
	return s.sessions.Expire(ctx, token, s.clock())
}

// Me resolves a session token to its user.
func (s *AuthService) Me(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, utils.NewAuthError("Session token required")
	}
	user, err := s.users.GetBySessionToken(ctx, token, s.clock())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewAuthError("Invalid or expired session")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) createSession(ctx context.Context, sessions *repository.SessionRepository, userID int64) (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	err = sessions.Create(ctx, &models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: s.clock().Add(s.ttl),
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// clock returns the current time in UTC at second precision so stored and
// compared timestamps share one text form on every driver.
func (s *AuthService) clock() time.Time {
	return s.now().UTC().Truncate(time.Second)
}
