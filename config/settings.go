package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"keyhud/paths"
)

// Settings represents the structure of ~/.keyhud/settings.json
type Settings struct {
	Debug           *bool  `json:"debug,omitempty"`
	DebugFile       string `json:"debug_file,omitempty"`
	KeybindsPath    string `json:"keybinds_path,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
	Mode            string `json:"mode,omitempty"`
	RefreshInterval string `json:"refresh_interval,omitempty"`
	ShowShared      *bool  `json:"show_shared,omitempty"`
}

// RefreshIntervalDuration parses the refresh_interval setting ("500ms",
// "2s"). Invalid or missing values fall back to the given default.
func (s *Settings) RefreshIntervalDuration(fallback time.Duration) time.Duration {
	if s == nil || s.RefreshInterval == "" {
		return fallback
	}
	d, err := time.ParseDuration(s.RefreshInterval)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// LoadSettings loads settings from ~/.keyhud/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return loadSettingsFrom(paths.SettingsPath())
}

func loadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.KeybindsPath != "" {
		settings.KeybindsPath = paths.ExpandPath(settings.KeybindsPath)
	}
	if settings.DebugFile != "" {
		settings.DebugFile = paths.ExpandPath(settings.DebugFile)
	}

	return &settings, nil
}
