package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsApplyWhenFileMissing(t *testing.T) {
	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", cfg.ServerAddress())
	assert.Equal(t, "http://127.0.0.1:5000", cfg.ServerBaseURL())
	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, 2*time.Second, cfg.ToastDuration())
}

func TestLoadOverridesFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[server]
address = "http://shop.example:8080/"

[logging]
level = "debug"

[ui]
toast_ms = 500
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := loadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "shop.example:8080", cfg.ServerAddress())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, 500*time.Millisecond, cfg.ToastDuration())
}

func TestEmptyFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	cfg, err := loadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestMalformedTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\naddress="), 0o644))

	_, err := loadFromPath(path)
	assert.Error(t, err)
}
