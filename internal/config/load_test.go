package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mnemo-app/mnemo-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "memory", cfg.Store.Driver)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MNEMO_SERVER_PORT", "9090")
	t.Setenv("MNEMO_SERVER_LOG_LEVEL", "debug")
	t.Setenv("MNEMO_STORE_DRIVER", "sqlite")
	t.Setenv("MNEMO_STORE_DSN", ":memory:")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, ":memory:", cfg.Store.DSN)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("MNEMO_SERVER_LOG_LEVEL", "verbose")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("unknown store driver", func(t *testing.T) {
		t.Setenv("MNEMO_STORE_DRIVER", "cassandra")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("sql driver without dsn", func(t *testing.T) {
		t.Setenv("MNEMO_STORE_DRIVER", "pgx")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
