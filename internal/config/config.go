// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// lifehub.
//
// Configuration lives at ~/.lifehub/config.toml with built-in defaults
// and environment variable overrides. The UI persists its own settings
// (theme, pinned dashboard vehicle) back through Save.
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/lifehub-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete lifehub configuration.
type Config struct {
	// ServerURL is the backend API base, including the /api prefix.
	ServerURL string `toml:"server_url"`
	// RequestTimeoutSecs bounds non-streaming API calls.
	RequestTimeoutSecs int `toml:"request_timeout_secs"`

	UI        UIConfig        `toml:"ui"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Chat      ChatConfig      `toml:"chat"`
	Log       LogConfig       `toml:"log"`
}

// UIConfig holds presentation settings the TUI persists.
type UIConfig struct {
	// Theme is one of "catppuccin", "glass", "lcars".
	Theme string `toml:"theme"`
	// CompactSidebar collapses the navigation rail to icons.
	CompactSidebar bool `toml:"compact_sidebar"`
	// RefreshSecs is the polling cadence for live dashboards.
	RefreshSecs int `toml:"refresh_secs"`
}

// DashboardConfig pins landing-page choices between runs.
type DashboardConfig struct {
	// VehicleID is the garage vehicle featured on the dashboard
	// (0 = the primary vehicle).
	VehicleID int64 `toml:"vehicle_id"`
}

// ChatConfig controls the AI chat page.
type ChatConfig struct {
	// CacheEnabled mirrors conversation metadata into ~/.lifehub/cache.db.
	CacheEnabled bool `toml:"cache_enabled"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Verbose enables debug logging to Path.
	Verbose bool `toml:"verbose"`
	// Path is the log file (empty = ~/.lifehub/lifehub.log).
	Path string `toml:"path"`
}

// Valid theme names.
const (
	ThemeCatppuccin = "catppuccin"
	ThemeGlass      = "glass"
	ThemeLCARS      = "lcars"
)

// Themes lists the valid theme names in display order.
var Themes = []string{ThemeCatppuccin, ThemeGlass, ThemeLCARS}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServerURL:          "http://localhost:8087/api",
		RequestTimeoutSecs: 60,
		UI: UIConfig{
			Theme:       ThemeCatppuccin,
			RefreshSecs: 60,
		},
		Chat: ChatConfig{CacheEnabled: true},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the lifehub configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".lifehub"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CachePath returns the path to the local metadata cache database.
func CachePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache.db"), nil
}

// LogPath resolves the log file location.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lifehub.log"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, falling back to defaults when absent.
// Environment overrides are applied last, then validation.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a specific config file. A missing file is not an
// error; defaults are used.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the config atomically to the default location.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the config atomically to a specific file.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# lifehub configuration file")
	fmt.Fprintln(&buf, "# Generated by lifehub - edit with care")
	fmt.Fprintln(&buf, "")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// DEFAULTS / OVERRIDES / VALIDATION
// =============================================================================

// SetDefaults fills zero-valued fields that have required defaults.
func (c *Config) SetDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = Default().ServerURL
	}
	if c.RequestTimeoutSecs <= 0 {
		c.RequestTimeoutSecs = 60
	}
	if c.UI.Theme == "" {
		c.UI.Theme = ThemeCatppuccin
	}
	if c.UI.RefreshSecs <= 0 {
		c.UI.RefreshSecs = 60
	}
}

// ApplyEnvOverrides layers LIFEHUB_* environment variables over the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if serverURL := os.Getenv("LIFEHUB_SERVER_URL"); serverURL != "" {
		c.ServerURL = serverURL
	}
	if theme := os.Getenv("LIFEHUB_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if verbose := os.Getenv("LIFEHUB_VERBOSE"); verbose != "" {
		c.Log.Verbose = verbose == "1" || strings.EqualFold(verbose, "true")
	}
}

// Validate checks the configuration for values the client cannot run
// with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server_url %q is not an absolute URL", c.ServerURL)
	}
	if !ValidTheme(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (valid: %s)", c.UI.Theme, strings.Join(Themes, ", "))
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first
// access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal re-reads the config from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal replaces the process-wide configuration. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets global config state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
