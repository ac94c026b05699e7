package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9999"
api_base_url: "https://api.example.com"
auth:
  token: dev-token
  user:
    super_admin: true
    display_name: Dev
    roles:
      acme: admin
redis:
  addr: "localhost:6379"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "dev-token", cfg.Auth.Token)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)

	user := cfg.Auth.User.User()
	require.NotNil(t, user)
	assert.True(t, user.IsSuperAdmin)
	assert.Equal(t, "Dev", user.DisplayName)
	assert.Equal(t, "admin", user.Roles["acme"])

	// Untouched fields keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LEADGRID_LISTEN", ":7777")
	t.Setenv("LEADGRID_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestDevUserNil(t *testing.T) {
	var d *DevUser
	assert.Nil(t, d.User())
}
