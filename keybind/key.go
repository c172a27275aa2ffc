package keybind

import "fmt"

// Key identifies the base key of a trigger. Character keys use KeyRune with
// the character stored in Trigger.Rune; anything we cannot interpret is kept
// verbatim as KeyLiteral with the raw text in Trigger.Text.
type Key uint8

const (
	KeyRune Key = iota
	KeyLiteral

	KeyEnter
	KeyEscape
	KeyTab
	KeyBackTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// String returns the canonical display name for the key.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyLiteral:
		return "Literal"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyTab:
		return "Tab"
	case KeyBackTab:
		return "BackTab"
	case KeySpace:
		return "Space"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		if k.IsFunctionKey() {
			return fmt.Sprintf("F%d", int(k-KeyF1)+1)
		}
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsFunctionKey returns true for F1 through F12.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true for the arrow keys.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// keyNameMap maps key names (lowercase) to Key values. It covers both tmux
// notation (ppage, npage, bspace, dc, ic) and the long spellings.
var keyNameMap = map[string]Key{
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"tab":       KeyTab,
	"btab":      KeyBackTab,
	"backtab":   KeyBackTab,
	"space":     KeySpace,
	"backspace": KeyBackspace,
	"bspace":    KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"dc":        KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"ic":        KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"ppage":     KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"npage":     KeyPageDown,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}
