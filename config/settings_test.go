package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileIsNotAnError(t *testing.T) {
	s, err := loadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Nil(t, s.Debug)
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"debug": true,
		"mode": "copy-mode",
		"refresh_interval": "250ms",
		"show_shared": false
	}`), 0644))

	s, err := loadSettingsFrom(path)

	require.NoError(t, err)
	require.NotNil(t, s.Debug)
	assert.True(t, *s.Debug)
	assert.Equal(t, "copy-mode", s.Mode)
	require.NotNil(t, s.ShowShared)
	assert.False(t, *s.ShowShared)
	assert.Equal(t, 250*time.Millisecond, s.RefreshIntervalDuration(time.Second))
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := loadSettingsFrom(path)
	assert.Error(t, err)
}

func TestRefreshIntervalDurationFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"empty", "", 2 * time.Second},
		{"invalid", "soon", 2 * time.Second},
		{"negative", "-5s", 2 * time.Second},
		{"valid", "500ms", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{RefreshInterval: tt.value}
			assert.Equal(t, tt.expected, s.RefreshIntervalDuration(2*time.Second))
		})
	}
}
