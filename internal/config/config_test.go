package config_test

import (
	"testing"

	"user-directory-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"MIN_AGE", "SERVER_PORT", "LOG_LEVEL", "STORAGE_DRIVER", "SQLITE_PATH",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadConfig()

	assert.ErrorIs(t, err, config.ErrEnvFileNotFound)
	assert.Equal(t, 18, cfg.MinAge)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, ":memory:", cfg.SQLitePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MIN_AGE", "21")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", config.StoragePostgres)
	t.Setenv("DB_NAME", "users")

	cfg, err := config.LoadConfig()

	require.ErrorIs(t, err, config.ErrEnvFileNotFound)
	assert.Equal(t, 21, cfg.MinAge)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, config.StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "users", cfg.DBName)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric min age", "MIN_AGE", "eighteen"},
		{"negative min age", "MIN_AGE", "-1"},
		{"unknown storage", "STORAGE_DRIVER", "redis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.LoadConfig()

			assert.Error(t, err)
			assert.NotErrorIs(t, err, config.ErrEnvFileNotFound)
		})
	}
}
