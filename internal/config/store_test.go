package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFactory_CreateStore(t *testing.T) {
	t.Run("creates missing directory and file database", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Database.Dir = filepath.Join(t.TempDir(), "nested", "data")
		cfg.Database.DirPermissions = 0700

		store, err := NewStoreFactory(cfg).CreateStore()
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })

		info, err := os.Stat(cfg.Database.Dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, cfg.GetDatabasePath(), store.Path())
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("testing environment uses memory", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Application.Environment = Testing
		cfg.Database.Dir = filepath.Join(t.TempDir(), "unused")

		store, err := NewStoreFactory(cfg).CreateStore()
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })

		assert.Equal(t, MemoryDatabase, store.Path())
		_, err = os.Stat(cfg.Database.Dir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("directory that cannot be created", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))

		cfg := NewConfig()
		cfg.Database.Dir = filepath.Join(blocker, "data")

		_, err := NewStoreFactory(cfg).CreateStore()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create database directory")
	})
}
