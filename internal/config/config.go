// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// DefaultJournalName is the journal file created in the user's home
// directory when no explicit path is configured.
const DefaultJournalName = ".rusty-journal.json"

// Default values.
const (
	DefaultPadWidth = 80
	DefaultLogLevel = "warn"
	DefaultColor    = "auto"
)

// Config holds the full configuration for the journal CLI.
type Config struct {
	// JournalFile is the path to the journal file. Empty means the
	// default file in the user's home directory.
	JournalFile string `toml:"journal_file"`

	// PadWidth is the display width task text is padded to in list
	// output.
	PadWidth int `toml:"pad_width"`

	// LogLevel controls diagnostic output: debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Color controls status coloring of list output: auto or off.
	Color string `toml:"color"`
}

// Load builds the configuration from sources in priority order:
// defaults, then the user config file, then environment variables.
// CLI flags override on top of the returned config at the call site.
func Load() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if cfg.PadWidth < 0 {
		return nil, fmt.Errorf("pad_width must be non-negative, got %d", cfg.PadWidth)
	}
	return cfg, nil
}

// ResolveJournalFile picks the journal path: the override wins, then the
// configured path, then the default file in the home directory. It fails
// when no override is given and the home directory cannot be determined.
func ResolveJournalFile(override string, cfg *Config) (string, error) {
	if override != "" {
		return override, nil
	}
	if cfg != nil && cfg.JournalFile != "" {
		return cfg.JournalFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find journal file: %w", err)
	}
	return filepath.Join(home, DefaultJournalName), nil
}

func setDefaults(cfg *Config) {
	cfg.PadWidth = DefaultPadWidth
	cfg.LogLevel = DefaultLogLevel
	cfg.Color = DefaultColor
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("JOURNAL_FILE"); v != "" {
		cfg.JournalFile = v
	}
	if v := os.Getenv("JOURNAL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("JOURNAL_COLOR"); v != "" {
		cfg.Color = v
	}
}

// findUserConfigFile looks for a user-level config file. Checks
// ~/.journal/journal.toml first, then the OS-specific config directory.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".journal", "journal.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	if cfgDir := osUserConfigDir(); cfgDir != "" {
		path := filepath.Join(cfgDir, "journal", "journal.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// osUserConfigDir returns the OS-specific user config directory, or empty
// string if it cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}
