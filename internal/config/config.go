package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Session  SessionConfig
	Admin    AdminConfig
	Mail     MailConfig
	CORS     CORSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SessionConfig holds admin session configuration
type SessionConfig struct {
	EncryptionKey string
	TTL           time.Duration
}

// AdminConfig holds the credentials seeded by the setup endpoint
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// MailConfig holds contact notification mail configuration
type MailConfig struct {
	Provider        string
	FromAddress     string
	FromName        string
	NotifyAddress   string
	SESRegion       string
	SESAccessKeyID  string
	SESSecretKey    string
}

// CORSConfig holds allowed origins for browser clients
type CORSConfig struct {
	AllowedOrigins string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "sdpsite"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Session: SessionConfig{
			EncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
			TTL:           getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@sdp.com"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
			Name:     getEnv("ADMIN_NAME", "Admin"),
		},
		Mail: MailConfig{
			Provider:       getEnv("MAIL_PROVIDER", "noop"),
			FromAddress:    getEnv("MAIL_FROM_ADDRESS", "no-reply@sdp.com"),
			FromName:       getEnv("MAIL_FROM_NAME", "SDP Website"),
			NotifyAddress:  getEnv("MAIL_NOTIFY_ADDRESS", ""),
			SESRegion:      getEnv("SES_REGION", "us-east-1"),
			SESAccessKeyID: getEnv("SES_ACCESS_KEY_ID", ""),
			SESSecretKey:   getEnv("SES_SECRET_ACCESS_KEY", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
