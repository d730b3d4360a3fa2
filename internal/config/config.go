// Package config handles the XDG configuration directory, the optional
// config.toml file, and store path resolution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "ptask"

	// ConfigFile is the optional settings filename inside the config directory.
	ConfigFile = "config.toml"

	// DefaultStoreFile is the store path used when none is configured.
	// Relative paths resolve against the working directory.
	DefaultStoreFile = "tasks_database.json"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// StorePath is the task store file.
	StorePath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// fileSettings mirrors config.toml.
type fileSettings struct {
	Store    string `toml:"store"`
	LogLevel string `toml:"log_level"`
}

// New creates a new Config with the default or specified config directory
// and applies config.toml from that directory when present.
// If configDir is empty, uses XDG_CONFIG_HOME/ptask or $HOME/.config/ptask.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:       dir,
		StorePath: DefaultStoreFile,
		LogLevel:  DefaultLogLevel,
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.toml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasConfigFile checks if config.toml exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

func (c *Config) loadFile() error {
	var settings fileSettings
	md, err := toml.DecodeFile(c.ConfigPath(), &settings)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading config file %s: %w", c.ConfigPath(), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("loading config file %s: unknown key %q", c.ConfigPath(), undecoded[0].String())
	}

	if settings.Store != "" {
		c.StorePath = settings.Store
	}
	if settings.LogLevel != "" {
		switch settings.LogLevel {
		case "debug", "info", "warn", "error":
			c.LogLevel = settings.LogLevel
		default:
			return fmt.Errorf("loading config file %s: invalid log_level %q", c.ConfigPath(), settings.LogLevel)
		}
	}
	return nil
}

// EffectiveLogLevel returns the log level after applying Debug.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}
