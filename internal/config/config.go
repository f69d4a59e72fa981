package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "keyvault"

type Config struct {
	Database    DatabaseConfig `koanf:"database"`
	Settings    SettingsConfig `koanf:"settings"`
	Log         LogConfig      `koanf:"log"`
	StringsFile string         `koanf:"strings_file"` // TOML file overriding built-in strings
}

// DatabaseConfig locates the password database.
type DatabaseConfig struct {
	Path string `koanf:"path"` // default: $XDG_DATA_HOME/keyvault/vault.db
}

// SettingsConfig holds settings-screen behavior.
type SettingsConfig struct {
	AutoSave *bool `koanf:"auto_save"` // save right after a confirmed change (default: true)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/keyvault/keyvault.log
}

// Load reads the default config locations, skipping the ones that do not exist.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	return unmarshal(k)
}

// LoadFile reads a single explicit config file, which must exist.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Database.Path = expandPath(cfg.Database.Path)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.StringsFile = expandPath(cfg.StringsFile)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/keyvault/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DatabasePath returns the configured database path or the XDG default.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	return xdg.DataFile(filepath.Join(appName, "vault.db"))
}

// LogPath returns the configured log file or the XDG default.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// AutoSaveEnabled reports whether confirmed changes are saved immediately.
func (c *Config) AutoSaveEnabled() bool {
	if c.Settings.AutoSave == nil {
		return true
	}
	return *c.Settings.AutoSave
}

// LogLevel parses the configured level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
