package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable application configuration. It is loaded once at
// startup and passed into the components that need it; nothing mutates it
// afterwards.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey signs the session cookie. The server refuses to start
	// without one.
	SecretKey string `env:"SECRET_KEY"`

	Database DatabaseConfig
	Session  SessionConfig
	Mail     MailConfig
	Queue    QueueConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	// Path is the SQLite database file. ":memory:" is accepted for
	// throwaway runs.
	Path string `env:"DATABASE_PATH, default=data.sqlite"`
}

type SessionConfig struct {
	// MaxAge bounds the session cookie lifetime in seconds.
	MaxAge int `env:"SESSION_MAX_AGE, default=604800"`
}

type MailConfig struct {
	Host          string `env:"MAIL_HOST"`
	Port          int    `env:"MAIL_PORT, default=587"`
	UseTLS        bool   `env:"MAIL_USE_TLS, default=true"`
	Username      string `env:"MAIL_USERNAME"`
	Password      string `env:"MAIL_PASSWORD"`
	Sender        string `env:"MAIL_SENDER, default=Guestbook Admin <guestbook@example.com>"`
	Admin         string `env:"MAIL_ADMIN"`
	SubjectPrefix string `env:"MAIL_SUBJECT_PREFIX, default=[Guestbook] "`
}

// Enabled reports whether new-user notifications should be sent at all.
// Both a relay host and an admin recipient are required.
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.Admin != ""
}

type QueueConfig struct {
	Workers int `env:"QUEUE_WORKERS, default=4"`
	Buffer  int `env:"QUEUE_BUFFER,  default=64"`
}

type RedisConfig struct {
	// Addr enables the Redis-backed notification dedup guard when set.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// SessionTTL returns the session cookie lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.MaxAge) * time.Second
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required to sign session cookies")
	}
	return &cfg, nil
}
