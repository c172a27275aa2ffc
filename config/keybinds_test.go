package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyhud/keybind"
)

const sampleKeybinds = `
global:
  - key: C-q
    action: quit
modes:
  - name: pane
    bindings:
      - key: C-q
        action: close pane
      - key: C-n
        action: new pane
  - name: tab
    bindings:
      - key: t
        action: new tab
`

func TestParseKeybinds(t *testing.T) {
	cfg, err := ParseKeybinds([]byte(sampleKeybinds))

	require.NoError(t, err)
	require.Len(t, cfg.Global, 1)
	assert.Equal(t, "quit", cfg.Global[0].Action)
	assert.Equal(t, keybind.ParseTrigger("C-q"), cfg.Global[0].Trigger)

	require.Len(t, cfg.Modes, 2)
	assert.Equal(t, []string{"pane", "tab"}, cfg.ModeNames())
	assert.Len(t, cfg.Modes[0].Bindings, 2)
}

func TestParseKeybindsPreservesDeclarationOrder(t *testing.T) {
	cfg, err := ParseKeybinds([]byte(sampleKeybinds))
	require.NoError(t, err)

	active := keybind.Resolve(cfg, "pane")
	require.Len(t, active, 2)
	assert.Equal(t, "close pane", active[0].Action)
	assert.Equal(t, "new pane", active[1].Action)
}

func TestParseKeybindsInvalidYAML(t *testing.T) {
	_, err := ParseKeybinds([]byte("modes: [broken"))
	assert.Error(t, err)
}

func TestParseKeybindsSkipsEmptyKeys(t *testing.T) {
	cfg, err := ParseKeybinds([]byte(`
modes:
  - name: demo
    bindings:
      - key: ""
        action: ghost
      - key: q
        action: quit
`))

	require.NoError(t, err)
	require.Len(t, cfg.Modes, 1)
	require.Len(t, cfg.Modes[0].Bindings, 1)
	assert.Equal(t, "quit", cfg.Modes[0].Bindings[0].Action)
}

func TestParseKeybindsKeepsUnknownKeyAsLiteral(t *testing.T) {
	cfg, err := ParseKeybinds([]byte(`
modes:
  - name: demo
    bindings:
      - key: WheelUpPane
        action: scroll
`))

	require.NoError(t, err)
	b := cfg.Modes[0].Bindings[0]
	assert.Equal(t, keybind.KeyLiteral, b.Trigger.Key)
	assert.Equal(t, "WheelUpPane", b.Trigger.String())
}

func TestLoadKeybinds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleKeybinds), 0644))

	cfg, err := LoadKeybinds(path)

	require.NoError(t, err)
	assert.True(t, cfg.HasMode("pane"))
}

func TestLoadKeybindsMissingFile(t *testing.T) {
	_, err := LoadKeybinds(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultKeybindsResolvable(t *testing.T) {
	cfg := DefaultKeybinds()

	require.NotEmpty(t, cfg.Modes)
	active := keybind.Resolve(cfg, "prefix")
	assert.NotEmpty(t, active)

	// Global bindings surface in every mode.
	found := false
	for _, b := range active {
		if b.Action == "detach client" {
			found = true
		}
	}
	assert.True(t, found)
}
