// Package config defines the daemon configuration record and its built-in
// defaults. Values are bound through viper by the CLI layer (config file,
// STICKYONE_* env vars, flags); this package only knows the typed result.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// AppName names the config/data directories.
const AppName = "sticky-one"

// Defaults for the configuration record.
const (
	DefaultRetentionHours = 12
	DefaultPollInterval   = 500 * time.Millisecond
)

// Hotkey is the combo configuration: modifier key names plus one trigger key
// name. Loaded once at daemon start; immutable afterwards.
type Hotkey struct {
	Modifiers []string
	Key       string
}

// Config is the resolved daemon configuration.
type Config struct {
	Hotkey         Hotkey
	RetentionHours int
	PollInterval   time.Duration
	DataDir        string
}

// SetDefaults installs the built-in defaults on v, used when no config file
// exists.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("hotkey.modifiers", []string{"Alt", "Shift"})
	v.SetDefault("hotkey.key", "C")
	v.SetDefault("retention_hours", DefaultRetentionHours)
	v.SetDefault("poll_interval", DefaultPollInterval.String())
	v.SetDefault("data_dir", DefaultDataDir())
}

// FromViper reads the typed configuration out of v and validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		Hotkey: Hotkey{
			Modifiers: v.GetStringSlice("hotkey.modifiers"),
			Key:       v.GetString("hotkey.key"),
		},
		RetentionHours: v.GetInt("retention_hours"),
		PollInterval:   v.GetDuration("poll_interval"),
		DataDir:        v.GetString("data_dir"),
	}
	if c.RetentionHours <= 0 {
		return nil, fmt.Errorf("retention_hours must be positive, got %d", c.RetentionHours)
	}
	if c.PollInterval <= 0 {
		return nil, fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	return c, nil
}

// DefaultDataDir is $XDG_DATA_HOME/sticky-one, falling back to
// ~/.local/share/sticky-one.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DBPath is the history database location.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "clipboard.db")
}

// PIDPath is the daemon liveness marker location.
func (c *Config) PIDPath() string {
	return filepath.Join(c.DataDir, "daemon.pid")
}
