// Package config loads the process configuration from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

type Config struct {
	Port     string `env:"PORT,      default=8080" validate:"required,numeric"`
	Env      string `env:"ENV,       default=development" validate:"oneof=development test production"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT,  default=30s" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s" validate:"gt=0"`

	Database DatabaseConfig
	Auth     AuthConfig
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL" validate:"required,url,startswith=postgres"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS, default=10" validate:"gt=0"`
}

type AuthConfig struct {
	JWTSecret        string `env:"JWT_SECRET" validate:"required,min=16"`
	JWTExpiresIn     int    `env:"JWT_EXPIRES_IN,     default=3600" validate:"gt=0"`
	BcryptSaltRounds int    `env:"BCRYPT_SALT_ROUNDS, default=10" validate:"min=4,max=31"`
}

// TokenTTL is JWT_EXPIRES_IN as a duration.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.JWTExpiresIn) * time.Second
}

// Pretty reports whether logs should be written for a terminal.
func (c *Config) Pretty() bool {
	return c.Env == EnvDevelopment
}

// Load reads configuration from environment variables using go-envconfig and
// validates it.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// LoadDatabase reads only the database settings. Migrations need nothing
// else.
func LoadDatabase(ctx context.Context) (*DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := process(ctx, envconfig.OsLookuper(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := process(ctx, lookuper, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func process(ctx context.Context, lookuper envconfig.Lookuper, target any) error {
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   target,
		Lookuper: lookuper,
	}); err != nil {
		return fmt.Errorf("config: process environment: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(target); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
