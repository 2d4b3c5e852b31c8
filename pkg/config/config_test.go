package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CRASHDB_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.PageLimitMax)
	assert.Equal(t, 3, cfg.CreateRetryAttempts)
	assert.False(t, cfg.BearerTokenEnabled)
	assert.Equal(t, 480, cfg.TokenTTL)
	assert.Equal(t, "default", cfg.Source("page_limit_max"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "page_limit_max: 250\ncreate_retry_attempts: 5\nbearer_token_enabled: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	t.Setenv("CRASHDB_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.PageLimitMax)
	assert.Equal(t, "file", cfg.Source("page_limit_max"))
	assert.Equal(t, 5, cfg.CreateRetryAttempts)
	assert.True(t, cfg.BearerTokenEnabled)
	assert.Equal(t, "default", cfg.Source("token_ttl"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "page_limit_max: 250\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	t.Setenv("CRASHDB_CONFIG_PATH", dir)
	t.Setenv("CRASHDB_PAGE_LIMIT_MAX", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.PageLimitMax)
	assert.Equal(t, "environment", cfg.Source("page_limit_max"))
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("page_limit_max: [not an int"), 0644))
	t.Setenv("CRASHDB_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("CRASHDB_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.PageLimitMax = 0
	assert.Error(t, cfg.Validate())

	cfg.PageLimitMax = 1000
	cfg.TrustedProxies = []string{"not-a-cidr"}
	assert.Error(t, cfg.Validate())
}

func TestIsTrustedProxy(t *testing.T) {
	cfg := newDefault()
	cfg.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.5"}

	assert.True(t, cfg.IsTrustedProxy("10.1.2.3"))
	assert.True(t, cfg.IsTrustedProxy("192.168.1.5"))
	assert.False(t, cfg.IsTrustedProxy("172.16.0.1"))
	assert.False(t, cfg.IsTrustedProxy("not-an-ip"))
}

func TestAttributesCoverEveryName(t *testing.T) {
	cfg := newDefault()
	attrs := cfg.Attributes()

	byName := make(map[string]bool)
	for _, a := range attrs {
		byName[a.Name] = true
	}
	for _, name := range attributeNames() {
		assert.True(t, byName[name], "missing attribute %s", name)
	}
}
