package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// Config holds all application configuration loaded from environment variables.
// It is built once at startup and passed by reference to every component.
type Config struct {
	Port           string
	Env            string
	AdminSecretKey string
	MigrationsPath string

	DB   DatabaseConfig
	S3   S3Config
	Mail MailConfig
	Auth AuthConfig
}

// DatabaseConfig contains PostgreSQL connection parameters. URL, when set,
// takes precedence over the discrete fields.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// S3Config contains object storage configuration for image uploads.
type S3Config struct {
	Region          string
	Bucket          string
	Endpoint        string
	UsePathStyle    bool
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL is the CDN prefix that uploaded object keys are appended to.
	PublicBaseURL string
}

// MailConfig contains SMTP settings for stock notifications.
type MailConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Recipients []string
}

// AuthConfig contains customer session settings.
type AuthConfig struct {
	SessionTTL   time.Duration
	PasswordHash string // sha256 or bcrypt
}

// DSN returns the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first.
func Load() (*Config, error) {
	// Missing .env is fine; production relies on real environment variables.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.AdminSecretKey = getEnv("ADMIN_SECRET_KEY", "")
	cfg.MigrationsPath = getEnv("MIGRATIONS_PATH", "migrations")

	// Database
	cfg.DB = DatabaseConfig{
		URL:      getEnv("DATABASE_URL", ""),
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Object storage
	cfg.S3 = S3Config{
		Region:          getEnv("S3_REGION", "us-east-1"),
		Bucket:          getEnv("S3_BUCKET", "files"),
		Endpoint:        getEnv("S3_ENDPOINT", "https://bucket.poehali.dev"),
		UsePathStyle:    getEnvBool("S3_USE_PATH_STYLE", true),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		PublicBaseURL:   getEnv("CDN_BASE_URL", ""),
	}
	if cfg.S3.PublicBaseURL == "" && cfg.S3.AccessKeyID != "" {
		cfg.S3.PublicBaseURL = fmt.Sprintf("https://cdn.poehali.dev/projects/%s/files", cfg.S3.AccessKeyID)
	}

	// Mail
	cfg.Mail = MailConfig{
		Host:       getEnv("SMTP_HOST", "localhost"),
		Port:       getEnvInt("SMTP_PORT", 25),
		Username:   getEnv("SMTP_USERNAME", ""),
		Password:   getEnv("SMTP_PASSWORD", ""),
		From:       getEnv("MAIL_FROM", "noreply@tkexclusiv.ru"),
		Recipients: getEnvList("MAIL_RECIPIENTS", "info@tkexclusiv.ru,ya.exc03@yandex.ru,ya.exc08@yandex.ru"),
	}

	// Auth
	cfg.Auth.PasswordHash = strings.ToLower(getEnv("PASSWORD_HASH", "sha256"))
	var err error
	if cfg.Auth.SessionTTL, err = parseDurationEnv("SESSION_TTL", "720h"); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var err error
	if c.DB.URL == "" && (c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "") {
		err = multierr.Append(err, errors.New("database configuration incomplete: set DATABASE_URL or DB_HOST, DB_USER and DB_NAME"))
	}
	// An empty secret would let requests without the header through.
	if c.AdminSecretKey == "" {
		err = multierr.Append(err, errors.New("ADMIN_SECRET_KEY must be set"))
	}
	if c.Auth.PasswordHash != "sha256" && c.Auth.PasswordHash != "bcrypt" {
		err = multierr.Append(err, fmt.Errorf("PASSWORD_HASH must be sha256 or bcrypt, got %q", c.Auth.PasswordHash))
	}
	if c.Auth.SessionTTL <= 0 {
		err = multierr.Append(err, errors.New("SESSION_TTL must be positive"))
	}
	if len(c.Mail.Recipients) == 0 {
		err = multierr.Append(err, errors.New("MAIL_RECIPIENTS must list at least one address"))
	}
	return err
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvList(key, def string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, def), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
