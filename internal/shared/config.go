package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Server   ServerConfig   `toml:"server"`
	Session  SessionConfig  `toml:"session"`
}

// DatabaseConfig contains record store connection settings.
//
// Driver is either "sqlite3" (local file or :memory:) or "postgres"
// (hosted backend, DSN is a libpq connection string).
type DatabaseConfig struct {
	Driver       string `toml:"driver"`
	DSN          string `toml:"dsn"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ServerConfig contains HTTP server settings for the web UI.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SessionConfig controls where the current login is persisted.
type SessionConfig struct {
	Path string `toml:"path"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// A .env file in the working directory and WLX_* environment variables
// override values from the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays WLX_* environment variables onto the config.
//
// godotenv is best-effort: a missing .env file is not an error.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("WLX_DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("WLX_DATABASE_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("WLX_SERVER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("WLX_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("WLX_SESSION_PATH"); v != "" {
		c.Session.Path = v
	}
}
