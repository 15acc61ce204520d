package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Khata"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
		TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
	}

	Upload struct {
		// MaxBytes caps statement uploads; net-banking exports are tiny,
		// so 10MB leaves generous headroom.
		MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
	}

	Store struct {
		// Driver selects the transaction store: "memory" or "postgres".
		Driver string `envconfig:"STORE_DRIVER" default:"memory"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"khata"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	// A missing .env just means the environment is already set.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
