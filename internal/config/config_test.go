package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, file string) (*Config, error) {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	return Load(v, file)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	c, err := load(t, "")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", c.ServiceURL)
	assert.Equal(t, ":5175", c.Addr)
	assert.Equal(t, 100, c.Length)
	assert.Equal(t, "9,11", c.Input)
	assert.Equal(t, 10*time.Second, c.Timeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SYLVER_SERVICE_URL", "http://solver:5000")
	t.Setenv("SYLVER_LENGTH", "250")
	t.Setenv("SYLVER_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("PORT", "8080")

	c, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, "http://solver:5000", c.ServiceURL)
	assert.Equal(t, 250, c.Length)
	assert.Equal(t, 3*time.Second, c.Timeout)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, ":8080", c.Addr)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("PORT", "")
	path := filepath.Join(t.TempDir(), "sylver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("length: 300\ninput: \"4,6\"\nrate_limit: 2.5\n"), 0o600))

	c, err := load(t, path)
	require.NoError(t, err)
	assert.Equal(t, 300, c.Length)
	assert.Equal(t, "4,6", c.Input)
	assert.Equal(t, 2.5, c.RateLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(t, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("SYLVER_LENGTH", "50")
	_, err := load(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Length")

	t.Setenv("SYLVER_LENGTH", "100")
	t.Setenv("SYLVER_SERVICE_URL", "not a url")
	_, err = load(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ServiceURL")
}
