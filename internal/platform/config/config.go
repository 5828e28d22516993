package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process-wide configuration. It is loaded once in main and
// passed into constructors; nothing reads the environment after startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Redis    RedisConfig
	Storage  StorageConfig
	OAuth    OAuthConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host      string
	Port      int
	BaseRoute string
	WebDomain string
	Debug     bool
}

// DatabaseConfig holds the relational store settings.
type DatabaseConfig struct {
	Postgres PostgresConfig
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  int
}

// JWTConfig holds token signing settings. Access and refresh tokens are signed
// with separate HS256 secrets.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// EmailConfig holds SMTP settings for transactional mail (password reset OTP).
type EmailConfig struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	From     string
}

// RedisConfig holds settings for the OTP / refresh-session store.
type RedisConfig struct {
	Address  string
	Password string
	Database int
	Enabled  bool
}

// StorageConfig holds object storage settings for uploaded media.
type StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// OAuthConfig holds social sign-in settings.
type OAuthConfig struct {
	GoogleClientID string
	GoogleSecret   string
	RedirectURL    string
}

// AppConfig holds application identity settings.
type AppConfig struct {
	Name string
}

// LoadFromEnv loads configuration with a clear precedence:
// 1. explicit environment variables, 2. values from a .env file, 3. defaults.
// godotenv only fills variables that are not already set, which gives the
// precedence for free.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("HOST", "0.0.0.0"),
			Port:      getEnvInt("SERVER_PORT", 8080),
			BaseRoute: getEnv("BASE_ROUTE", "/api"),
			WebDomain: getEnv("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getEnvBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgresConfig{
				Host:            getEnv("POSTGRES_HOST", "localhost"),
				Port:            getEnvInt("POSTGRES_PORT", 5432),
				Username:        getEnv("POSTGRES_USERNAME", "postgres"),
				Password:        getEnv("POSTGRES_PASSWORD", ""),
				Database:        getEnv("POSTGRES_DATABASE", "newspulse"),
				SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: getEnvDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
				ConnectTimeout:  getEnvInt("POSTGRES_CONNECT_TIMEOUT", 10),
			},
		},
		JWT: JWTConfig{
			AccessSecret:  getEnv("JWT_SECRET", ""),
			RefreshSecret: getEnv("JWT_REFRESH_SECRET", ""),
			AccessTTL:     getEnvDuration("ACCESS_TOKEN_EXPIRY", 24*time.Hour),
			RefreshTTL:    getEnvDuration("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
		},
		Email: EmailConfig{
			SMTPHost: getEnv("SMTP_HOST", ""),
			SMTPPort: getEnvInt("SMTP_PORT", 587),
			SMTPUser: getEnv("SMTP_USER", ""),
			SMTPPass: getEnv("SMTP_PASS", ""),
			From:     getEnv("MAIL_FROM", ""),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			Database: getEnvInt("REDIS_DATABASE", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", true),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("STORAGE_ENDPOINT", ""),
			Region:          getEnv("STORAGE_REGION", "auto"),
			Bucket:          getEnv("STORAGE_BUCKET", ""),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("STORAGE_SECRET_ACCESS_KEY", ""),
			PublicBaseURL:   getEnv("STORAGE_PUBLIC_BASE_URL", ""),
		},
		OAuth: OAuthConfig{
			GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleSecret:   getEnv("GOOGLE_SECRET", ""),
			RedirectURL:    getEnv("OAUTH_REDIRECT_URL", ""),
		},
		App: AppConfig{
			Name: getEnv("APP_NAME", "NewsPulse"),
		},
	}

	if cfg.JWT.AccessSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.JWT.RefreshSecret == "" {
		return nil, fmt.Errorf("JWT_REFRESH_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
