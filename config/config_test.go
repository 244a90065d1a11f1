package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MONGODB_URL", "DATABASE_NAME", "PORT", "APP_VERSION", "LOG_LEVEL",
		"MONGODB_CONNECT_TIMEOUT", "HTTP_READ_HEADER_TIMEOUT", "HTTP_IDLE_TIMEOUT",
		"SHUTDOWN_TIMEOUT", "CONFIG_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URL)
	assert.Equal(t, "financial_kanban", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "0.1.0", cfg.App.Version)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URL", "mongodb://mongo:27017")
	t.Setenv("DATABASE_NAME", "kanban_test")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URL)
	assert.Equal(t, "kanban_test", cfg.Mongo.Database)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "items.toml")
	content := `
[Mongo]
url = "mongodb://file-host:27017"
database = "from_file"

[HTTP]
port = "7070"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "6060")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://file-host:27017", cfg.Mongo.URL)
	assert.Equal(t, "from_file", cfg.Mongo.Database)
	assert.Equal(t, "6060", cfg.HTTP.Port)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_CONNECT_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
