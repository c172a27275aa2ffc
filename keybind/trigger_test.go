package keybind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTrigger(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Trigger
	}{
		{"plain rune", "j", Trigger{Key: KeyRune, Rune: 'j'}},
		{"uppercase rune", "G", Trigger{Key: KeyRune, Rune: 'G'}},
		{"tmux ctrl", "C-q", Trigger{Key: KeyRune, Mods: ModCtrl, Rune: 'q'}},
		{"tmux meta", "M-x", Trigger{Key: KeyRune, Mods: ModAlt, Rune: 'x'}},
		{"tmux shift arrow", "S-Up", Trigger{Key: KeyUp, Mods: ModShift}},
		{"stacked tmux prefixes", "C-M-h", Trigger{Key: KeyRune, Mods: ModCtrl | ModAlt, Rune: 'h'}},
		{"long ctrl", "Ctrl+q", Trigger{Key: KeyRune, Mods: ModCtrl, Rune: 'q'}},
		{"long alt enter", "Alt+Enter", Trigger{Key: KeyEnter, Mods: ModAlt}},
		{"long multi", "Ctrl+Shift+a", Trigger{Key: KeyRune, Mods: ModCtrl | ModShift, Rune: 'a'}},
		{"bare key name", "Space", Trigger{Key: KeySpace}},
		{"tmux page up", "PPage", Trigger{Key: KeyPageUp}},
		{"tmux page down", "NPage", Trigger{Key: KeyPageDown}},
		{"tmux delete", "DC", Trigger{Key: KeyDelete}},
		{"function key", "f5", Trigger{Key: KeyF5}},
		{"escape alias", "esc", Trigger{Key: KeyEscape}},
		{"plus key", "Ctrl++", Trigger{Key: KeyRune, Mods: ModCtrl, Rune: '+'}},
		{"unicode rune", "é", Trigger{Key: KeyRune, Rune: 'é'}},
		{"unknown text kept literal", "MouseDown1Pane", Trigger{Key: KeyLiteral, Text: "MouseDown1Pane"}},
		{"empty", "", Trigger{Key: KeyLiteral}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTrigger(tt.input))
		})
	}
}

func TestTriggerString(t *testing.T) {
	tests := []struct {
		name     string
		trigger  Trigger
		expected string
	}{
		{"plain rune", Trigger{Key: KeyRune, Rune: 'j'}, "j"},
		{"ctrl rune", Trigger{Key: KeyRune, Mods: ModCtrl, Rune: 'p'}, "Ctrl+p"},
		{"alt special", Trigger{Key: KeyEnter, Mods: ModAlt}, "Alt+Enter"},
		{"multi mods ordered", Trigger{Key: KeyRune, Mods: ModShift | ModCtrl, Rune: 'a'}, "Ctrl+Shift+a"},
		{"bare special", Trigger{Key: KeySpace}, "Space"},
		{"function key", Trigger{Key: KeyF12}, "F12"},
		{"arrow", Trigger{Key: KeyUp}, "Up"},
		{"literal", Trigger{Key: KeyLiteral, Text: "WheelUpPane"}, "WheelUpPane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.trigger.String())
		})
	}
}

func TestParseTriggerRoundTrip(t *testing.T) {
	// Canonical display forms parse back to the same trigger.
	for _, s := range []string{"Ctrl+q", "Alt+Enter", "Space", "F5", "Up", "g"} {
		trig := ParseTrigger(s)
		assert.Equal(t, trig, ParseTrigger(trig.String()), "round trip for %q", s)
	}
}
