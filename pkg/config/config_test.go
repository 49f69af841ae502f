package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	t.Setenv("ACCESS_CONFIG_PATH", dir)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ACCESS_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3600, cfg.TokenTTL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, "default", cfg.Source("token_ttl"))
}

func TestLoadFromFile(t *testing.T) {
	writeConfigFile(t, "token_ttl: 600\nport: 9000\ntrusted_proxies:\n  - 10.0.0.0/8\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.TokenTTL)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
	assert.Equal(t, "file", cfg.Source("token_ttl"))
	assert.Equal(t, "default", cfg.Source("bind_address"))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	writeConfigFile(t, "token_ttl: 600\n")
	t.Setenv("ACCESS_TOKEN_TTL", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.TokenTTL)
	assert.Equal(t, "environment", cfg.Source("token_ttl"))
}

func TestLoadMalformedFile(t *testing.T) {
	writeConfigFile(t, "token_ttl: [not a number\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestIsTrustedProxy(t *testing.T) {
	cfg := newDefault()
	cfg.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.5"}

	assert.True(t, cfg.IsTrustedProxy("10.1.2.3"))
	assert.True(t, cfg.IsTrustedProxy("192.168.1.5"))
	assert.False(t, cfg.IsTrustedProxy("172.16.0.1"))
	assert.False(t, cfg.IsTrustedProxy("not-an-ip"))
}

func TestValidate(t *testing.T) {
	cfg := newDefault()
	require.NoError(t, cfg.Validate())

	cfg.TrustedProxies = []string{"not-a-cidr"}
	assert.Error(t, cfg.Validate())

	cfg = newDefault()
	cfg.TokenTTL = 0
	assert.Error(t, cfg.Validate())

	cfg = newDefault()
	cfg.Port = 70000
	assert.Error(t, cfg.Validate())
}
