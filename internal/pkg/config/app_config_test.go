//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textseal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeAppConfig_Defaults(t *testing.T) {
	cfg, err := InitializeAppConfig("")
	require.NoError(t, err)

	assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Nil(t, cfg.Database)
}

func TestInitializeAppConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: keys.db
`)

	cfg, err := InitializeAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "keys.db", cfg.Database.DSN)
}

func TestInitializeAppConfig_EnvOverride(t *testing.T) {
	t.Setenv("TEXTSEAL_LOGGER_LOG_LEVEL", LogLevelError)

	cfg, err := InitializeAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, LogLevelError, cfg.Logger.LogLevel)
}

func TestInitializeAppConfig_Invalid(t *testing.T) {
	path := writeConfig(t, `
logger:
  log_level: loud
  log_type: console
`)

	_, err := InitializeAppConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestInitializeAppConfig_MissingFile(t *testing.T) {
	_, err := InitializeAppConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeAppConfig_DatabaseFromEnv(t *testing.T) {
	t.Setenv("TEXTSEAL_DATABASE_TYPE", SqliteDbType)
	t.Setenv("TEXTSEAL_DATABASE_DSN", "catalog.db")

	cfg, err := InitializeAppConfig("")
	require.NoError(t, err)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "catalog.db", cfg.Database.DSN)
}
