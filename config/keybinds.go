package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"keyhud/keybind"
)

// keybindsFile mirrors the on-disk keybinds.yaml layout. Modes are a list so
// declaration order survives the round trip; map keys would not keep it.
type keybindsFile struct {
	Global []bindingEntry `yaml:"global"`
	Modes  []modeEntry    `yaml:"modes"`
}

type modeEntry struct {
	Name     string         `yaml:"name"`
	Bindings []bindingEntry `yaml:"bindings"`
}

type bindingEntry struct {
	Key    string `yaml:"key"`
	Action string `yaml:"action"`
}

// LoadKeybinds reads a keybinding configuration snapshot from a YAML file.
// Unparseable key notations are kept as literal triggers, so a typo shows up
// on screen instead of silently vanishing.
func LoadKeybinds(path string) (*keybind.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keybinds file: %w", err)
	}
	return ParseKeybinds(data)
}

// ParseKeybinds builds a keybind.Config from YAML bytes.
func ParseKeybinds(data []byte) (*keybind.Config, error) {
	var file keybindsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid keybinds file: %w", err)
	}

	cfg := &keybind.Config{
		Global: toBindings(file.Global),
	}
	for _, m := range file.Modes {
		cfg.Modes = append(cfg.Modes, keybind.Mode{
			Name:     m.Name,
			Bindings: toBindings(m.Bindings),
		})
	}
	return cfg, nil
}

func toBindings(entries []bindingEntry) []keybind.Binding {
	out := make([]keybind.Binding, 0, len(entries))
	for _, e := range entries {
		if e.Key == "" {
			continue
		}
		out = append(out, keybind.Binding{
			Trigger: keybind.ParseTrigger(e.Key),
			Action:  e.Action,
		})
	}
	return out
}

// DefaultKeybinds is the built-in demo configuration used when keyhud runs
// outside tmux without a keybinds.yaml. It sketches the stock tmux prefix
// and copy-mode tables.
func DefaultKeybinds() *keybind.Config {
	return &keybind.Config{
		Global: []keybind.Binding{
			{Trigger: keybind.ParseTrigger("C-b"), Action: "send prefix"},
			{Trigger: keybind.ParseTrigger("d"), Action: "detach client"},
		},
		Modes: []keybind.Mode{
			{
				Name: "prefix",
				Bindings: []keybind.Binding{
					{Trigger: keybind.ParseTrigger("c"), Action: "new window"},
					{Trigger: keybind.ParseTrigger("n"), Action: "next window"},
					{Trigger: keybind.ParseTrigger("p"), Action: "previous window"},
					{Trigger: keybind.ParseTrigger("%"), Action: "split horizontal"},
					{Trigger: keybind.ParseTrigger("\""), Action: "split vertical"},
					{Trigger: keybind.ParseTrigger("z"), Action: "zoom pane"},
					{Trigger: keybind.ParseTrigger("["), Action: "copy mode"},
					{Trigger: keybind.ParseTrigger("x"), Action: "kill pane"},
				},
			},
			{
				Name: "copy-mode",
				Bindings: []keybind.Binding{
					{Trigger: keybind.ParseTrigger("Space"), Action: "begin selection"},
					{Trigger: keybind.ParseTrigger("Enter"), Action: "copy selection"},
					{Trigger: keybind.ParseTrigger("q"), Action: "exit copy mode"},
					{Trigger: keybind.ParseTrigger("Up"), Action: "cursor up"},
					{Trigger: keybind.ParseTrigger("Down"), Action: "cursor down"},
				},
			},
		},
	}
}
