// Package config reads the server configuration from the process
// environment, with an optional local .env file loaded first.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from LEDGER_-prefixed environment variables.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `envconfig:"ADDR" default:":8080"`
	// Storage selects the backend: jsonfile, memory or postgres.
	Storage string `envconfig:"STORAGE" default:"jsonfile"`
	// DataFile is the JSON account database used by the jsonfile
	// backend. The same file the admin CLI operates on.
	DataFile string `envconfig:"DATA_FILE" default:"users.json"`
	// PostgresURL is the connection string for the postgres backend.
	PostgresURL string `envconfig:"POSTGRES_URL"`
	// KafkaBrokers enables ItemSold event publication when non-empty.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}
	var cfg Config
	if err := envconfig.Process("ledger", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
