package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the back-office service and the import CLI.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	HTTPBodyLimit   string        `env:"HTTP_BODY_LIMIT" envDefault:"20M"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret   string `env:"SUPABASE_JWT_SECRET,required,notEmpty"`

	// Empty disables the redis fan-out; revalidations are only logged.
	RedisURL string `env:"REDIS_URL"`

	S3Endpoint         string `env:"S3_ENDPOINT"`
	S3Region           string `env:"S3_REGION" envDefault:"us-east-1"`
	S3AccessKeyID      string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey  string `env:"S3_SECRET_ACCESS_KEY"`
	MediaBucket        string `env:"MEDIA_BUCKET" envDefault:"productimages"`
	MediaPublicBaseURL string `env:"MEDIA_PUBLIC_BASE_URL"`

	ImportTimeout      time.Duration `env:"IMPORT_TIMEOUT" envDefault:"30s"`
	ImportMaxFileBytes int64         `env:"IMPORT_MAX_FILE_BYTES" envDefault:"10485760"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.ImportTimeout <= 0 {
		return fmt.Errorf("IMPORT_TIMEOUT must be positive, got %s", c.ImportTimeout)
	}
	if c.ImportMaxFileBytes <= 0 {
		return fmt.Errorf("IMPORT_MAX_FILE_BYTES must be positive, got %d", c.ImportMaxFileBytes)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
