package config

import (
	"fmt"
	"os"
)

// Config holds everything the service reads from the environment. It is
// built once in main and handed to every constructor; nothing else reads
// os.Getenv after startup.
type Config struct {
	Port     string
	Database Database
	Mongo    Mongo
}

// Database is the Postgres connection configuration.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Mongo configures the optional photo store. URI empty means photos are
// disabled.
type Mongo struct {
	URI      string
	Database string
}

// DSN renders the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads the configuration from the environment. DB_HOST, DB_USER and
// DB_NAME are required; everything else falls back to a sensible default.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getenv("PORT", "8080"),
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Mongo: Mongo{
			URI:      os.Getenv("MONGO_URI"),
			Database: getenv("MONGO_DB", "cake_photos"),
		},
	}

	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("config: DB_HOST is required")
	}
	if cfg.Database.User == "" {
		return nil, fmt.Errorf("config: DB_USER is required")
	}
	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("config: DB_NAME is required")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
