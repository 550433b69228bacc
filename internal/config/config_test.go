package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "./output", cfg.OutputDir)
		assert.Equal(t, "Global Logistics", cfg.CompanyName)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.ArchiveDir)
		assert.Empty(t, cfg.CatalogWorkbook)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
output_dir: /srv/receipts
archive_dir: /srv/archive
company_name: Acme Cargo
log_level: debug
chrome:
  bin: /usr/bin/chromium
  navigation_timeout_ms: 45000
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/srv/receipts", cfg.OutputDir)
		assert.Equal(t, "/srv/archive", cfg.ArchiveDir)
		assert.Equal(t, "Acme Cargo", cfg.CompanyName)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/usr/bin/chromium", cfg.Chrome.Bin)
		assert.Equal(t, 45*time.Second, cfg.Chrome.NavigationTimeout())
	})

	t.Run("partial file keeps defaults for absent keys", func(t *testing.T) {
		path := writeConfigFile(t, "company_name: Acme Cargo\n")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "Acme Cargo", cfg.CompanyName)
		assert.Equal(t, "./output", cfg.OutputDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := writeConfigFile(t, "output_dir: [broken")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid log level is an error", func(t *testing.T) {
		path := writeConfigFile(t, "log_level: loud\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestChromeConfig_NavigationTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, ChromeConfig{}.NavigationTimeout())
	assert.Equal(t, 5*time.Second, ChromeConfig{NavigationTimeoutMs: 5000}.NavigationTimeout())
}
