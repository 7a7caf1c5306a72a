package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "TODO"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// SetConfigFile makes the loader read path instead of searching for todo.{yaml,toml,json}.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with a config file, when one is found
// 3. Override with environment variables
// 4. Override with command line flags (see LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	l.setDefaults(NewConfig())

	if err := l.readConfigFile(); err != nil {
		return nil, err
	}

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
	if err := l.v.BindEnv("application.environment", EnvPrefix+"_ENV", EnvPrefix+"_APPLICATION_ENVIRONMENT"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	config := &Config{}
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) setDefaults(defaults *Config) {
	l.v.SetDefault("database.dir", defaults.Database.Dir)
	l.v.SetDefault("database.filename", defaults.Database.Filename)
	l.v.SetDefault("database.busy_timeout", defaults.Database.BusyTimeout)
	l.v.SetDefault("database.dir_permissions", defaults.Database.DirPermissions)
	l.v.SetDefault("server.addr", defaults.Server.Addr)
	l.v.SetDefault("server.body_limit", defaults.Server.BodyLimit)
	l.v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	l.v.SetDefault("logging.level", defaults.Logging.Level)
	l.v.SetDefault("logging.format", defaults.Logging.Format)
	l.v.SetDefault("application.environment", string(defaults.Application.Environment))
}

func (l *Loader) readConfigFile() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", l.configFile, err)
		}
		return nil
	}

	l.v.SetConfigName("todo")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("$HOME/.todo")
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir         *string
	DBFilename    *string
	DBBusyTimeout *time.Duration

	// Server overrides
	ServerAddr *string

	// Logging overrides
	LogLevel  *string
	LogFormat *string

	// Application overrides
	Environment *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBBusyTimeout != nil {
		config.Database.BusyTimeout = *overrides.DBBusyTimeout
	}
	if overrides.ServerAddr != nil {
		config.Server.Addr = *overrides.ServerAddr
	}
	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Logging.Format = *overrides.LogFormat
	}
	if overrides.Environment != nil {
		config.Application.Environment = Environment(*overrides.Environment)
	}
}
