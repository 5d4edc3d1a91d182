package config

import (
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	Env            string
	DatabaseDSN    string
	AllowedOrigins []string
}

// Load loads configuration from environment variables
func Load() Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "3000"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	// The default keeps the whole log in process memory; a single shared
	// connection is enough for one server instance.
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}

	cfg := Config{
		ServerPort:     serverPort,
		Env:            env,
		DatabaseDSN:    dsn,
		AllowedOrigins: strings.Split(allowedOrigins, ","),
	}

	for i := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(cfg.AllowedOrigins[i])
	}

	return cfg
}
