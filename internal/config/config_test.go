package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
env: "prod"
storage_driver: "sqlite"
storage_path: ":memory:"
http_server:
  address: "0.0.0.0:9000"
  read_timeout: 3s
  max_body_bytes: 2048
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "env: \"dev\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, ":memory:", cfg.StoragePath)
	assert.Equal(t, "localhost:8082", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "http_server:\n  address: \"localhost:1\"\n")
	t.Setenv("HTTP_SERVER_ADDR", "localhost:2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:2", cfg.Addr)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, "storage_driver: \"postgres\"\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}
