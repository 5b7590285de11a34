package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultDatabaseURL is used when no connection string is configured.
// Suitable for local development only.
const DefaultDatabaseURL = "postgres://postgres:@localhost/stec_tenet"

// Config holds everything the process needs at startup. It is built once
// in main and handed to the components that need it; nothing reads
// ambient global state.
type Config struct {
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
	Environment     string
}

// Load reads configuration from environment variables, falling back to
// the documented defaults.
func Load() *Config {
	viper.SetDefault("TENET_DATABASE_URL", DefaultDatabaseURL)
	viper.SetDefault("TENET_DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("TENET_DB_MAX_IDLE_CONNS", 10)
	viper.SetDefault("TENET_DB_CONN_MAX_LIFETIME", 30*time.Minute)
	viper.SetDefault("TENET_LOG_LEVEL", "info")
	viper.SetDefault("TENET_ENV", "development")
	viper.AutomaticEnv()

	return &Config{
		DatabaseURL:     viper.GetString("TENET_DATABASE_URL"),
		MaxOpenConns:    viper.GetInt("TENET_DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    viper.GetInt("TENET_DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: viper.GetDuration("TENET_DB_CONN_MAX_LIFETIME"),
		LogLevel:        viper.GetString("TENET_LOG_LEVEL"),
		Environment:     viper.GetString("TENET_ENV"),
	}
}
