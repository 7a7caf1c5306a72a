package config

import (
	"path/filepath"
	"time"

	"github.com/labstack/gommon/bytes"

	"todo-api/internal/repository/sqlite"
)

// MemoryDatabase is the filename selecting an in-memory database.
const MemoryDatabase = sqlite.MemoryPath

// Config holds all configuration options for the todo API
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Application ApplicationConfig `mapstructure:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `mapstructure:"dir"`
	Filename       string        `mapstructure:"filename"`
	BusyTimeout    time.Duration `mapstructure:"busy_timeout"`
	DirPermissions uint32        `mapstructure:"dir_permissions"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	BodyLimit       string        `mapstructure:"body_limit"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Environment Environment `mapstructure:"environment"`
}

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            ".",
			Filename:       "todo.sq3",
			BusyTimeout:    5 * time.Second,
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:            ":5000",
			BodyLimit:       "1M",
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Application: ApplicationConfig{
			Environment: Production,
		},
	}
}

// IsInMemory reports whether the configured database lives only in memory
func (c *Config) IsInMemory() bool {
	return c.Database.Filename == MemoryDatabase || c.Application.Environment == Testing
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	if c.IsInMemory() {
		return MemoryDatabase
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.Dir == "" && !c.IsInMemory() {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.BusyTimeout < 0 {
		return &ConfigError{Field: "database.busy_timeout", Message: "busy timeout cannot be negative"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if _, err := bytes.Parse(c.Server.BodyLimit); err != nil {
		return &ConfigError{Field: "server.body_limit", Message: "body limit must be a size such as 1M or 512K"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate logging configuration
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "log level must be one of debug, info, warn, error"}
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be text or json"}
	}

	// Validate application configuration
	switch c.Application.Environment {
	case Development, Testing, Production:
	default:
		return &ConfigError{Field: "application.environment", Message: "environment must be development, testing or production"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
