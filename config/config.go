package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"rasporedApp/logger"
)

type Config struct {
	LogLevel logger.LogLevel `env:"LOG_LEVEL" envDefault:"1"`
	LogDir   string          `env:"LOG_DIR" envDefault:"./logs"`
	Listen   string          `env:"LISTEN_ADDR" envDefault:":5001"`

	// StrictUpdates makes PUT /api/events/:id answer 404 when the
	// identifier matches no row instead of reporting success.
	StrictUpdates bool `env:"STRICT_UPDATES" envDefault:"false"`

	Database DatabaseConfig `envPrefix:"DATABASE_"`
}

type DatabaseConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME" envDefault:"raspored_app"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// DSN builds the lib/pq connection string. The password is only ever
// sourced from the environment.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.Host, c.Port, c.Name, c.User, c.Password, c.SSLMode)
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
