package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealhub/remote-config/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONTENT_TABLE_NAME", "content")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "content", cfg.TableName)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONTENT_TABLE_NAME", "content-staging")
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LISTEN_ADDR", ":9999")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "content-staging", cfg.TableName)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9999", cfg.ListenAddr)
}

func TestLoadRequiresTableName(t *testing.T) {
	t.Setenv("CONTENT_TABLE_NAME", "")

	_, err := config.Load()
	assert.Error(t, err)
}
