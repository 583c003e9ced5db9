package domain

import (
	"path/filepath"
	"time"
)

// File names used under the config and data directories.
const (
	ConfigFileName = "config.toml"
	StoreFileName  = "tasks.json"
	NotifyFileName = "notify.json"
	LogFileName    = "remindo.log"
)

// Config represents the application configuration.
type Config struct {
	Storage       StorageConfig // [storage] settings
	Notifications NotifyConfig  // [notifications] settings
	Log           LogConfig     // [log] settings
	Warnings      []string      // Unknown-key warnings collected during load
}

// StorageConfig holds store settings from the [storage] section.
type StorageConfig struct {
	Path string // Store file path (empty = default data dir)
}

// NotifyConfig holds notification settings from the [notifications] section.
type NotifyConfig struct {
	Command string // Custom notifier command (overrides platform detection)
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// ConfigDir returns the remindo config directory under configHome
// (typically $XDG_CONFIG_HOME or ~/.config).
func ConfigDir(configHome string) string {
	return filepath.Join(configHome, "remindo")
}

// DataDir returns the remindo data directory under dataHome
// (typically $XDG_DATA_HOME or ~/.local/share).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, "remindo")
}

// reminderLayouts are the accepted input formats for reminder times,
// tried in order. Layouts without a date default to today.
var reminderLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"15:04",
}

// ParseReminder parses user-supplied reminder text in the local time
// zone. Time-only input is interpreted as the current day.
func ParseReminder(s string, now time.Time) (time.Time, error) {
	for _, layout := range reminderLayouts {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err != nil {
			continue
		}
		if layout == "15:04" {
			t = time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
		}
		return t, nil
	}
	return time.Time{}, ErrInvalidReminder
}
