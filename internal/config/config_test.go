package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("WALLET_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("WALLET_FROM_DOTENV"))

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded, "no .env present")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WALLET_FROM_DOTENV=yes\n"), 0600))
	loaded, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "yes", os.Getenv("WALLET_FROM_DOTENV"))
}

func TestLoadEnv_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("WALLET_KEEP", "process")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WALLET_KEEP=file\n"), 0600))

	_, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "process", os.Getenv("WALLET_KEEP"))
}

func TestBootstrapLogSettings(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")
	assert.Equal(t, "debug", BootstrapLogLevel())
	assert.Equal(t, "json", BootstrapLogFormat())

	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))
	assert.Equal(t, "info", BootstrapLogLevel())
	assert.Equal(t, "text", BootstrapLogFormat())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("WALLET_SET", "value")
	assert.Equal(t, "value", GetEnv("WALLET_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnv("WALLET_DEFINITELY_UNSET_VAR", "fallback"))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := &Config{}
	config.Log.Level = "debug"
	config.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(config)

	assert.NotNil(t, logger)
}
