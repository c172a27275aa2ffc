package keybind

import (
	"strings"
	"unicode/utf8"
)

// Trigger identifies a bindable key combination: a base key plus a modifier
// set. Triggers are comparable; equality is exact on (key, modifiers, rune).
type Trigger struct {
	Key  Key
	Mods Modifier
	Rune rune   // set when Key == KeyRune
	Text string // set when Key == KeyLiteral, kept verbatim
}

// String renders the trigger in canonical short form, e.g. "Ctrl+p",
// "Alt+Enter", "Space", "g".
func (t Trigger) String() string {
	var base string
	switch t.Key {
	case KeyRune:
		base = string(t.Rune)
	case KeyLiteral:
		base = t.Text
	default:
		base = t.Key.String()
	}

	if mods := t.Mods.String(); mods != "" {
		return mods + "+" + base
	}
	return base
}

// ParseTrigger parses a key notation into a Trigger. It accepts tmux prefix
// notation ("C-q", "M-Enter", "S-Up"), long notation ("Ctrl+q",
// "Alt+Shift+Tab"), bare key names ("Space", "PPage", "f5") and single
// characters. Parsing never fails: anything unrecognized is preserved as a
// literal trigger so a hand-edited configuration still displays.
func ParseTrigger(s string) Trigger {
	s = strings.TrimSpace(s)
	if s == "" {
		return Trigger{Key: KeyLiteral}
	}

	var mods Modifier
	rest := s

	// tmux prefix notation: any run of "C-", "M-", "S-" before the key.
	for len(rest) > 2 && rest[1] == '-' {
		mod := modifierFromName(rest[:1])
		if mod == ModNone {
			break
		}
		mods = mods.With(mod)
		rest = rest[2:]
	}

	// Long notation: "Ctrl+Shift+A". The final segment is the key; a
	// trailing "+" means the key itself is '+'.
	if mods == ModNone && len(rest) > 1 {
		var modsStr, key string
		if strings.HasSuffix(rest, "+") {
			key = "+"
			modsStr = strings.TrimSuffix(rest[:len(rest)-1], "+")
		} else if i := strings.LastIndex(rest, "+"); i > 0 {
			key = rest[i+1:]
			modsStr = rest[:i]
		}
		if key != "" && modsStr != "" {
			valid := true
			parts := strings.Split(modsStr, "+")
			for _, p := range parts {
				if modifierFromName(p) == ModNone {
					valid = false
					break
				}
			}
			if valid {
				for _, p := range parts {
					mods = mods.With(modifierFromName(p))
				}
				rest = key
			}
		}
	}

	if k, ok := keyNameMap[strings.ToLower(rest)]; ok {
		return Trigger{Key: k, Mods: mods}
	}

	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return Trigger{Key: KeyRune, Mods: mods, Rune: r}
	}

	// Not a key name and not a single character. Keep the original text so
	// the binding still shows up rather than disappearing.
	return Trigger{Key: KeyLiteral, Mods: mods, Text: rest}
}
