// Package logging builds the application's logrus logger.
package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"todo-api/internal/config"
)

// New creates a logger writing to out with the configured level and
// format. TODO_DEBUG overrides the level with debug.
func New(cfg config.LoggingConfig, out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if DebugEnabled() {
		level = log.DebugLevel
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return logger, nil
}
