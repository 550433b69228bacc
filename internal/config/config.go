// =============================================================================
// Cargo Receipt Generator - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. All
// settings have working defaults, so a missing configuration file is not an
// error - the desk can run the tool with nothing but the built-in catalog
// and the default output directory.
//
// CONFIGURATION FILE (config.yaml):
//   output_dir: ./output
//   archive_dir: ./archive
//   assets_dir: ./assets
//   catalog_workbook: ./catalog.xlsx
//   company_name: Global Logistics
//   log_level: info
//   chrome:
//     bin: /usr/bin/chromium
//     navigation_timeout_ms: 30000
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated receipt images are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where archival copies of generated
	// receipts are kept. Empty disables archival.
	ArchiveDir string `yaml:"archive_dir"`

	// AssetsDir is the directory containing the company and airline logo
	// images. Empty renders the receipt with text in place of logos.
	AssetsDir string `yaml:"assets_dir"`

	// CatalogWorkbook is the path to an XLSX workbook overriding the
	// built-in reference catalog. Empty or missing keeps the built-ins.
	CatalogWorkbook string `yaml:"catalog_workbook"`

	// =========================================================================
	// RECEIPT SETTINGS
	// =========================================================================

	// CompanyName appears on every receipt and is fixed for the session.
	// Default: "Global Logistics"
	CompanyName string `yaml:"company_name"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// BROWSER SETTINGS
	// =========================================================================

	// Chrome configures the headless browser used for rasterization.
	Chrome ChromeConfig `yaml:"chrome"`
}

// ChromeConfig configures the headless Chrome the renderer drives.
type ChromeConfig struct {
	// Bin is the path to the Chrome/Chromium binary. Empty lets the
	// launcher resolve one.
	Bin string `yaml:"bin"`

	// NavigationTimeoutMs bounds page load in milliseconds.
	// Default: 30000
	NavigationTimeoutMs int `yaml:"navigation_timeout_ms"`
}

// NavigationTimeout returns the navigation timeout as a duration.
func (c ChromeConfig) NavigationTimeout() time.Duration {
	if c.NavigationTimeoutMs == 0 {
		return 30 * time.Second
	}
	return time.Duration(c.NavigationTimeoutMs) * time.Millisecond
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.CompanyName == "" {
		cfg.CompanyName = "Global Logistics"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the configuration for values that can only fail later in
// confusing ways.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level: %q", cfg.LogLevel)
	}
	return nil
}
