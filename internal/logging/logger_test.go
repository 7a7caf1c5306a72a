package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv(DebugEnv, "")

	t.Run("text format at info", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(config.LoggingConfig{Level: "info", Format: "text"}, &buf)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.WithField("id", 3).Info("task created")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "task created")
		assert.Contains(t, out, "id=3")
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
		require.NoError(t, err)

		logger.WithField("table", "tasks").Warn("slow query")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "slow query", entry["msg"])
		assert.Equal(t, "tasks", entry["table"])
		assert.Equal(t, "warning", entry["level"])
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(config.LoggingConfig{Level: "chatty", Format: "text"}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New(config.LoggingConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestNew_DebugOverride(t *testing.T) {
	t.Setenv(DebugEnv, "1")

	logger, err := New(config.LoggingConfig{Level: "error", Format: "text"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}
