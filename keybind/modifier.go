package keybind

import "strings"

// Modifier is a bitmask of modifier keys attached to a trigger.
type Modifier uint8

const (
	ModNone Modifier = 0

	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns the canonical display form like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
// Single letters follow tmux prefix notation: C- is Ctrl, M- is Meta/Alt,
// S- is Shift.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"m":       ModAlt,
	"meta":    ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"cmd":     ModMeta,
	"super":   ModMeta,
	"win":     ModMeta,
}

// modifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func modifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}
